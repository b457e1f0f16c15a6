package sentiment

import "sentiment-analysis/internal/model"

// AnalyzeInput is the unit of work: one social-media record plus the caller's
// main keywords. Optional text fields default to empty strings.
type AnalyzeInput struct {
	ID           string
	Index        string
	Title        string
	Content      string
	Description  string
	Type         string
	MainKeywords []string
}

// KeywordCategories holds extracted sentiment-bearing keywords. There is no
// neutral bucket — it is dropped to control payload size.
type KeywordCategories struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// Empty returns a KeywordCategories with both buckets allocated and empty.
func EmptyKeywords() KeywordCategories {
	return KeywordCategories{Positive: []string{}, Negative: []string{}}
}

// IsEmpty reports whether both buckets are empty.
func (k KeywordCategories) IsEmpty() bool {
	return len(k.Positive) == 0 && len(k.Negative) == 0
}

// Analysis is the validated output of one classification round — either a
// parsed LLM response or a short-circuit result.
type Analysis struct {
	Targeted    bool
	Sentiment   model.Sentiment
	Confidence  float64
	Keywords    KeywordCategories
	Explanation string
}

// AnalyzeOutput is the finalized response entity: the analysis plus the
// derived log level and request echo fields.
type AnalyzeOutput struct {
	ID       string
	Index    string
	Type     string
	Analysis Analysis
	LogLevel int
}

// ParseStatus tags which path the response parser took.
type ParseStatus int

const (
	// ParseOK means the LLM returned a well-formed JSON object.
	ParseOK ParseStatus = iota
	// ParseRecovered means the object was decoded but needed repair
	// (missing fields, out-of-range values, malformed keyword shape).
	ParseRecovered
	// ParseFailed means no JSON could be decoded; the heuristic
	// trigger-word fallback produced the analysis.
	ParseFailed
)

// ParseOutcome is the tagged result of parsing raw LLM output. Every outcome
// carries a complete, schema-valid Analysis — parsing never fails the request.
type ParseOutcome struct {
	Status   ParseStatus
	Analysis Analysis
	Reason   string
}
