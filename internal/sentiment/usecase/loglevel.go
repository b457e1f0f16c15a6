package usecase

import "sentiment-analysis/internal/model"

// calculateLogLevel derives the downstream alerting tier from sentiment,
// record type and targeting. Total function: unknown types fall through to 0.
//
//	0: neutral or positive, or negative without a qualifying type
//	1: negative comment (targeting not required; a comment is inherently
//	   about the thing it is attached to)
//	2: negative targeted topic post
//	3: negative targeted news topic
func calculateLogLevel(s model.Sentiment, recordType string, targeted bool) int {
	if s != model.SentimentNegative {
		return 0
	}
	switch {
	case model.IsCommentType(recordType):
		return 1
	case model.IsTopicType(recordType) && targeted:
		return 2
	case recordType == model.NewsTopicType && targeted:
		return 3
	default:
		return 0
	}
}
