package usecase

import (
	"encoding/json"
	"strings"

	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
)

// Trigger words for the heuristic fallback when the LLM response carries no
// decodable JSON. Vietnamese plus the English words the models tend to emit.
var (
	positiveTriggers = []string{"positive", "tích cực", "tốt", "hay"}
	negativeTriggers = []string{"negative", "tiêu cực", "xấu", "tệ"}
)

// rawAnalysis is the decode target for the first parse phase. Every field is
// optional; the repair phase fills defaults and coerces shapes.
type rawAnalysis struct {
	Targeted    *bool           `json:"targeted"`
	Sentiment   *string         `json:"sentiment"`
	Confidence  *float64        `json:"confidence"`
	Keywords    json.RawMessage `json:"keywords"`
	Explanation *string         `json:"explanation"`
}

// parseResponse turns raw LLM output into a complete, schema-valid Analysis.
// It never returns an error: a decodable JSON object goes through defaults,
// coercion and invariant enforcement; anything else falls back to the
// trigger-word heuristic. The outcome status records which path ran.
func parseResponse(raw string) sentiment.ParseOutcome {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return fallbackParse(raw, sentiment.ExplanationNoJSON)
	}

	var decoded rawAnalysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &decoded); err != nil {
		return fallbackParse(raw, "JSON decode failed")
	}

	var repairs []string
	analysis := sentiment.Analysis{
		Sentiment:  model.SentimentNeutral,
		Confidence: sentiment.ConfidenceDefault,
		Keywords:   sentiment.EmptyKeywords(),
	}

	if decoded.Targeted != nil {
		analysis.Targeted = *decoded.Targeted
	} else {
		repairs = append(repairs, "targeted missing")
	}

	switch {
	case decoded.Sentiment == nil:
		repairs = append(repairs, "sentiment missing")
	default:
		coerced := model.Sentiment(strings.ToLower(strings.TrimSpace(*decoded.Sentiment)))
		if coerced.Valid() {
			analysis.Sentiment = coerced
		} else {
			repairs = append(repairs, "sentiment coerced to neutral")
		}
	}

	if decoded.Confidence != nil {
		analysis.Confidence = *decoded.Confidence
		if analysis.Confidence < 0 {
			analysis.Confidence = 0
			repairs = append(repairs, "confidence clamped")
		} else if analysis.Confidence > 1 {
			analysis.Confidence = 1
			repairs = append(repairs, "confidence clamped")
		}
	} else {
		repairs = append(repairs, "confidence missing")
	}

	if kw, reason := repairKeywords(decoded.Keywords); reason == "" {
		analysis.Keywords = kw
	} else {
		repairs = append(repairs, reason)
	}

	if decoded.Explanation != nil {
		analysis.Explanation = *decoded.Explanation
	}

	// Not targeted means neutral with capped confidence; neutral judgments
	// never carry sentiment keywords.
	if !analysis.Targeted {
		analysis.Sentiment = model.SentimentNeutral
		if analysis.Confidence > sentiment.MaxUntargetedConfidence {
			analysis.Confidence = sentiment.MaxUntargetedConfidence
		}
	}
	if analysis.Sentiment == model.SentimentNeutral {
		analysis.Keywords = sentiment.EmptyKeywords()
	}

	if len(repairs) > 0 {
		return sentiment.ParseOutcome{
			Status:   sentiment.ParseRecovered,
			Analysis: analysis,
			Reason:   strings.Join(repairs, "; "),
		}
	}
	return sentiment.ParseOutcome{Status: sentiment.ParseOK, Analysis: analysis}
}

// repairKeywords validates the keywords value. Only a mapping is acceptable;
// the two-category schema has no neutral slot, so a bare list is discarded.
// The returned reason is empty when the shape was usable.
func repairKeywords(raw json.RawMessage) (sentiment.KeywordCategories, string) {
	if len(raw) == 0 {
		return sentiment.EmptyKeywords(), "keywords missing"
	}

	var shaped struct {
		Positive []string `json:"positive"`
		Negative []string `json:"negative"`
	}
	if err := json.Unmarshal(raw, &shaped); err != nil {
		return sentiment.EmptyKeywords(), "keywords shape discarded"
	}

	kw := sentiment.EmptyKeywords()
	if shaped.Positive != nil {
		kw.Positive = shaped.Positive
	}
	if shaped.Negative != nil {
		kw.Negative = shaped.Negative
	}
	return kw, ""
}

// fallbackParse scans the raw text for sentiment trigger words. It always
// returns targeted=true: the parser only runs after the mention check has
// already established targeting, and the heuristic polarity would otherwise
// be erased by the untargeted invariant.
func fallbackParse(raw, reason string) sentiment.ParseOutcome {
	lower := strings.ToLower(raw)

	analysis := sentiment.Analysis{
		Targeted:    true,
		Sentiment:   model.SentimentNeutral,
		Confidence:  sentiment.ConfidenceFallbackNeutral,
		Keywords:    sentiment.EmptyKeywords(),
		Explanation: sentiment.ExplanationFallback,
	}
	if containsAny(lower, positiveTriggers) {
		analysis.Sentiment = model.SentimentPositive
		analysis.Confidence = sentiment.ConfidenceFallbackParse
	} else if containsAny(lower, negativeTriggers) {
		analysis.Sentiment = model.SentimentNegative
		analysis.Confidence = sentiment.ConfidenceFallbackParse
	}

	return sentiment.ParseOutcome{
		Status:   sentiment.ParseFailed,
		Analysis: analysis,
		Reason:   reason,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
