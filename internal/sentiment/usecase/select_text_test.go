package usecase

import (
	"strings"
	"testing"

	"sentiment-analysis/internal/sentiment"
)

func TestSelectText(t *testing.T) {
	t.Parallel()

	t.Run("comment types use content only", func(t *testing.T) {
		got := selectText(sentiment.AnalyzeInput{
			Type:        "youtubeComment",
			Title:       "Video về Grab",
			Content:     "Tài xế thân thiện lắm",
			Description: "Mô tả video",
		})
		if got != "Tài xế thân thiện lắm" {
			t.Errorf("got %q, want content only", got)
		}
	})

	t.Run("comment with blank content merges the rest", func(t *testing.T) {
		got := selectText(sentiment.AnalyzeInput{
			Type:        "fbPageComment",
			Title:       "Grab tăng giá",
			Content:     "   ",
			Description: "Nhiều người phản ánh",
		})
		if !strings.Contains(got, "Grab tăng giá") || !strings.Contains(got, "Nhiều người phản ánh") {
			t.Errorf("got %q, want merged title+description", got)
		}
	})

	t.Run("non-comment types merge all fields in order", func(t *testing.T) {
		got := selectText(sentiment.AnalyzeInput{
			Type:        "fbPost",
			Title:       "Tiêu đề",
			Content:     "Nội dung chính",
			Description: "Mô tả thêm",
		})
		want := "Tiêu đề. Nội dung chính. Mô tả thêm"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("duplicate sentences appear once", func(t *testing.T) {
		got := selectText(sentiment.AnalyzeInput{
			Type:        "newsTopic",
			Title:       "Grab tăng giá cước.",
			Content:     "Grab tăng giá cước. Người dùng không hài lòng.",
			Description: "grab tăng giá cước",
		})
		if n := strings.Count(strings.ToLower(got), "grab tăng giá cước"); n != 1 {
			t.Errorf("duplicate sentence kept %d times in %q", n, got)
		}
		if !strings.Contains(got, "Người dùng không hài lòng") {
			t.Errorf("unique sentence missing from %q", got)
		}
	})

	t.Run("all fields blank yields empty string", func(t *testing.T) {
		if got := selectText(sentiment.AnalyzeInput{Type: "fbPost"}); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("unknown type is treated as non-comment", func(t *testing.T) {
		got := selectText(sentiment.AnalyzeInput{
			Type:    "somethingNew",
			Title:   "Tiêu đề",
			Content: "Nội dung",
		})
		if !strings.Contains(got, "Tiêu đề") {
			t.Errorf("got %q, want merged text including title", got)
		}
	})
}
