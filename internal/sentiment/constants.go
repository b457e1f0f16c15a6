package sentiment

// Policy constants for the classification pipeline. The confidence values are
// deliberate signals: 0.0 means a hard failure, 0.3 means "checked but
// unmatched or repaired", 0.1 means the text was too short to judge.
const (
	// ConfidenceNotMentioned is returned when the keyword check ran but
	// found no mention.
	ConfidenceNotMentioned = 0.3

	// ConfidenceFallbackParse is assigned by the heuristic parser when the
	// LLM response carried no usable JSON.
	ConfidenceFallbackParse = 0.3

	// ConfidenceDefault fills a missing confidence field in LLM output.
	ConfidenceDefault = 0.3

	// ConfidenceFallbackNeutral is the fallback parser's confidence when no
	// trigger word matched either.
	ConfidenceFallbackNeutral = 0.1

	// ConfidenceTooShort is returned for text below MinAnalyzableLength.
	ConfidenceTooShort = 0.1

	// MaxUntargetedConfidence caps confidence for untargeted results.
	MaxUntargetedConfidence = 0.4

	// MinAnalyzableLength is the minimum rune count worth sending to the LLM.
	MinAnalyzableLength = 5
)

// Explanation strings for short-circuit and failure results. Vietnamese, to
// match the explanations the LLM produces.
const (
	ExplanationNoKeywords   = "Không có từ khóa chính để phân tích"
	ExplanationNotMentioned = "Không nhắc đến chủ thể"
	ExplanationTooShort     = "Nội dung quá ngắn để phân tích"
	ExplanationFallback     = "Phân tích dự phòng do lỗi parse"
	ExplanationNoJSON       = "Không tìm thấy JSON trong response"
	ExplanationTimeout      = "Request timeout"
)
