package usecase

import (
	"testing"

	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
)

func TestParseResponseWellFormed(t *testing.T) {
	t.Parallel()

	t.Run("complete object parses clean", func(t *testing.T) {
		outcome := parseResponse(`{"targeted": true, "sentiment": "positive", "confidence": 0.85, "keywords": {"positive": ["tốt"], "negative": []}, "explanation": "Khen sản phẩm"}`)
		if outcome.Status != sentiment.ParseOK {
			t.Fatalf("status = %v (%s), want ParseOK", outcome.Status, outcome.Reason)
		}
		a := outcome.Analysis
		if !a.Targeted || a.Sentiment != model.SentimentPositive || a.Confidence != 0.85 {
			t.Errorf("got %+v", a)
		}
		if len(a.Keywords.Positive) != 1 || a.Keywords.Positive[0] != "tốt" {
			t.Errorf("keywords = %+v", a.Keywords)
		}
	})

	t.Run("json embedded in prose is extracted", func(t *testing.T) {
		outcome := parseResponse("Here is my analysis:\n```json\n" + `{"targeted": true, "sentiment": "negative", "confidence": 0.7, "keywords": {"positive": [], "negative": ["tệ"]}, "explanation": "x"}` + "\n```\nHope that helps!")
		if outcome.Status != sentiment.ParseOK {
			t.Fatalf("status = %v (%s), want ParseOK", outcome.Status, outcome.Reason)
		}
		if outcome.Analysis.Sentiment != model.SentimentNegative {
			t.Errorf("sentiment = %q", outcome.Analysis.Sentiment)
		}
	})

	t.Run("case variant sentiment is accepted", func(t *testing.T) {
		outcome := parseResponse(`{"targeted": true, "sentiment": "Positive", "confidence": 0.8, "keywords": {"positive": [], "negative": []}, "explanation": "x"}`)
		if outcome.Analysis.Sentiment != model.SentimentPositive {
			t.Errorf("sentiment = %q, want positive", outcome.Analysis.Sentiment)
		}
	})
}

func TestParseResponseRepair(t *testing.T) {
	t.Parallel()

	t.Run("missing fields get defaults", func(t *testing.T) {
		outcome := parseResponse(`{"sentiment": "positive"}`)
		if outcome.Status != sentiment.ParseRecovered {
			t.Fatalf("status = %v, want ParseRecovered", outcome.Status)
		}
		a := outcome.Analysis
		// Absent targeted defaults to false, which neutralizes the result.
		if a.Targeted || a.Sentiment != model.SentimentNeutral {
			t.Errorf("got %+v, want untargeted neutral", a)
		}
		if a.Confidence != sentiment.ConfidenceDefault {
			t.Errorf("confidence = %v, want default", a.Confidence)
		}
	})

	t.Run("unknown sentiment is coerced to neutral", func(t *testing.T) {
		outcome := parseResponse(`{"targeted": true, "sentiment": "ecstatic", "confidence": 0.9, "keywords": {"positive": ["x"], "negative": []}, "explanation": "x"}`)
		if outcome.Status != sentiment.ParseRecovered {
			t.Fatalf("status = %v, want ParseRecovered", outcome.Status)
		}
		if outcome.Analysis.Sentiment != model.SentimentNeutral {
			t.Errorf("sentiment = %q, want neutral", outcome.Analysis.Sentiment)
		}
		if len(outcome.Analysis.Keywords.Positive) != 0 {
			t.Error("neutral result must not carry keywords")
		}
	})

	t.Run("confidence is clamped into range", func(t *testing.T) {
		for raw, want := range map[string]float64{
			`{"targeted": true, "sentiment": "positive", "confidence": 1.7, "keywords": {"positive": [], "negative": []}, "explanation": "x"}`:  1.0,
			`{"targeted": true, "sentiment": "positive", "confidence": -0.2, "keywords": {"positive": [], "negative": []}, "explanation": "x"}`: 0.0,
		} {
			outcome := parseResponse(raw)
			if outcome.Analysis.Confidence != want {
				t.Errorf("confidence = %v, want %v", outcome.Analysis.Confidence, want)
			}
			if outcome.Status != sentiment.ParseRecovered {
				t.Errorf("status = %v, want ParseRecovered for clamped value", outcome.Status)
			}
		}
	})

	t.Run("bare list keywords are discarded", func(t *testing.T) {
		outcome := parseResponse(`{"targeted": true, "sentiment": "positive", "confidence": 0.8, "keywords": ["tốt", "hay"], "explanation": "x"}`)
		if outcome.Status != sentiment.ParseRecovered {
			t.Fatalf("status = %v, want ParseRecovered", outcome.Status)
		}
		if !outcome.Analysis.Keywords.IsEmpty() {
			t.Errorf("keywords = %+v, want empty", outcome.Analysis.Keywords)
		}
	})

	t.Run("untargeted is neutralized and capped", func(t *testing.T) {
		outcome := parseResponse(`{"targeted": false, "sentiment": "positive", "confidence": 0.9, "keywords": {"positive": ["tốt"], "negative": []}, "explanation": "x"}`)
		a := outcome.Analysis
		if a.Sentiment != model.SentimentNeutral {
			t.Errorf("sentiment = %q, want neutral", a.Sentiment)
		}
		if a.Confidence > sentiment.MaxUntargetedConfidence {
			t.Errorf("confidence = %v, want <= %v", a.Confidence, sentiment.MaxUntargetedConfidence)
		}
		if !a.Keywords.IsEmpty() {
			t.Error("untargeted result must not carry keywords")
		}
	})
}

func TestParseResponseFallback(t *testing.T) {
	t.Parallel()

	t.Run("no json at all", func(t *testing.T) {
		outcome := parseResponse("I think this is great but here's no JSON")
		if outcome.Status != sentiment.ParseFailed {
			t.Fatalf("status = %v, want ParseFailed", outcome.Status)
		}
		// "great" is not in the trigger lists; only the documented
		// Vietnamese/English trigger words flip the polarity.
		if outcome.Analysis.Sentiment != model.SentimentNeutral {
			t.Errorf("sentiment = %q, want neutral", outcome.Analysis.Sentiment)
		}
		if outcome.Analysis.Confidence > sentiment.MaxUntargetedConfidence {
			t.Errorf("confidence = %v, want <= %v", outcome.Analysis.Confidence, sentiment.MaxUntargetedConfidence)
		}
	})

	t.Run("negative trigger word", func(t *testing.T) {
		outcome := parseResponse("Nội dung này khá tệ, không đánh giá cao")
		if outcome.Analysis.Sentiment != model.SentimentNegative {
			t.Errorf("sentiment = %q, want negative", outcome.Analysis.Sentiment)
		}
		if outcome.Analysis.Confidence != sentiment.ConfidenceFallbackParse {
			t.Errorf("confidence = %v", outcome.Analysis.Confidence)
		}
	})

	t.Run("positive trigger word", func(t *testing.T) {
		outcome := parseResponse("nhìn chung là tích cực")
		if outcome.Analysis.Sentiment != model.SentimentPositive {
			t.Errorf("sentiment = %q, want positive", outcome.Analysis.Sentiment)
		}
	})

	t.Run("arbitrary inputs always yield a schema-valid analysis", func(t *testing.T) {
		inputs := []string{
			"",
			"{",
			"}",
			`{"targeted": `,
			`{"sentiment": 42}`,
			"}{",
			"\x00\xff\xfe",
			`{"keywords": "not even close"}`,
			`[1, 2, 3]`,
		}
		for _, raw := range inputs {
			outcome := parseResponse(raw)
			a := outcome.Analysis
			if !a.Sentiment.Valid() {
				t.Errorf("%q: invalid sentiment %q", raw, a.Sentiment)
			}
			if a.Confidence < 0 || a.Confidence > 1 {
				t.Errorf("%q: confidence %v out of range", raw, a.Confidence)
			}
			if a.Keywords.Positive == nil || a.Keywords.Negative == nil {
				t.Errorf("%q: keyword buckets must be allocated", raw)
			}
			if a.Sentiment == model.SentimentNeutral && !a.Keywords.IsEmpty() {
				t.Errorf("%q: neutral with keywords", raw)
			}
		}
	})
}
