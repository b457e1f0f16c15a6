package model

// Sentiment is the polarity of a classified record.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known polarities.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// CommentTypes enumerates record types that represent user comments.
// Comments are judged on their own content; the surrounding title and
// description belong to the post being commented on.
var CommentTypes = map[string]struct{}{
	"fbPageComment":    {},
	"fbGroupComment":   {},
	"fbUserComment":    {},
	"forumComment":     {},
	"newsComment":      {},
	"youtubeComment":   {},
	"tiktokComment":    {},
	"snsComment":       {},
	"linkedinComment":  {},
	"ecommerceComment": {},
	"threadsComment":   {},
	"comment":          {},
}

// TopicTypes enumerates top-level post types, excluding NewsTopicType which
// has its own severity tier.
var TopicTypes = map[string]struct{}{
	"fbPageTopic":    {},
	"fbGroupTopic":   {},
	"fbUserTopic":    {},
	"forumTopic":     {},
	"youtubeTopic":   {},
	"tiktokTopic":    {},
	"snsTopic":       {},
	"linkedinTopic":  {},
	"ecommerceTopic": {},
	"threadsTopic":   {},
}

// NewsTopicType is the record type for news articles.
const NewsTopicType = "newsTopic"

// IsCommentType reports whether recordType is a comment-like record.
// Unknown types are treated as non-comment.
func IsCommentType(recordType string) bool {
	_, ok := CommentTypes[recordType]
	return ok
}

// IsTopicType reports whether recordType is a top-level (non-news) topic.
func IsTopicType(recordType string) bool {
	_, ok := TopicTypes[recordType]
	return ok
}
