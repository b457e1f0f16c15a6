package usecase

import (
	"regexp"
	"strings"

	"sentiment-analysis/internal/matcher"
	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]`)

// selectText picks the text the pipeline analyzes. Comment-like records use
// content alone: title and description on a comment are the surrounding post,
// and letting them leak in would attribute the post's sentiment to the
// commenter. The same text feeds both the mention check and the LLM. All other
// records get the deduplicated merge of title, content and description.
//
// A comment with empty content falls back to the merged form so the record is
// still analyzable.
func selectText(input sentiment.AnalyzeInput) string {
	if model.IsCommentType(input.Type) && strings.TrimSpace(input.Content) != "" {
		return input.Content
	}
	return mergeDedup(input.Title, input.Content, input.Description)
}

// mergeDedup joins text parts at sentence granularity, dropping sentences
// already seen in normalized form. Title, content and description on posts
// and articles frequently repeat each other.
func mergeDedup(parts ...string) string {
	seen := make(map[string]struct{})
	var merged []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		for _, s := range sentenceSplitRe.Split(part, -1) {
			clean := matcher.Normalize(s)
			if clean == "" {
				continue
			}
			if _, ok := seen[clean]; ok {
				continue
			}
			seen[clean] = struct{}{}
			merged = append(merged, strings.TrimSpace(s))
		}
	}
	return strings.Join(merged, ". ")
}
