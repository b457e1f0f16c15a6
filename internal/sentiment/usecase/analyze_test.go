package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/internal/topic"
)

const negativeResponse = `{"targeted": true, "sentiment": "negative", "confidence": 0.9, "keywords": {"positive": [], "negative": ["tệ"]}, "explanation": "Chê dịch vụ"}`

func newTestUsecase(gen Generator, gw *fakeGateway, topics topic.Repository) sentiment.UseCase {
	return New(mockLogger{}, gen, gw, topics, nil, nil, nil, Options{})
}

func TestAnalyzeShortCircuits(t *testing.T) {
	ctx := context.Background()

	t.Run("empty keywords never call the llm", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, err := uc.Analyze(ctx, sentiment.AnalyzeInput{
			ID:      "r1",
			Index:   "social_posts",
			Type:    "fbPost",
			Content: "Dịch vụ này tệ quá",
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("llm calls = %d, want 0", gen.calls)
		}
		if out.Analysis.Targeted || out.Analysis.Sentiment != model.SentimentNeutral || out.Analysis.Confidence != 0.0 {
			t.Errorf("got %+v, want untargeted neutral with confidence 0", out.Analysis)
		}
		if out.Analysis.Explanation != sentiment.ExplanationNoKeywords {
			t.Errorf("explanation = %q", out.Analysis.Explanation)
		}
	})

	t.Run("no mention never calls the llm", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			ID:           "r1",
			Index:        "air_purifiers",
			Type:         "fbGroupTopic",
			Title:        "Máy lọc Sharp rất tốt",
			Description:  "Tôi hài lòng",
			MainKeywords: []string{"dyson"},
		})
		if gen.calls != 0 {
			t.Errorf("llm calls = %d, want 0", gen.calls)
		}
		if out.Analysis.Targeted || out.Analysis.Sentiment != model.SentimentNeutral {
			t.Errorf("got %+v, want untargeted neutral", out.Analysis)
		}
		if out.Analysis.Confidence != sentiment.ConfidenceNotMentioned {
			t.Errorf("confidence = %v, want %v", out.Analysis.Confidence, sentiment.ConfidenceNotMentioned)
		}
		if out.Analysis.Explanation != sentiment.ExplanationNotMentioned {
			t.Errorf("explanation = %q", out.Analysis.Explanation)
		}
	})

	t.Run("too-short text never calls the llm", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			ID:           "r1",
			Type:         "fbPost",
			Content:      "ok",
			MainKeywords: []string{"grab"},
		})
		if gen.calls != 0 {
			t.Errorf("llm calls = %d, want 0", gen.calls)
		}
		if out.Analysis.Confidence != sentiment.ConfidenceTooShort {
			t.Errorf("confidence = %v, want %v", out.Analysis.Confidence, sentiment.ConfidenceTooShort)
		}
	})
}

func TestAnalyzeLLMPath(t *testing.T) {
	ctx := context.Background()

	t.Run("mention invokes the llm and targets the result", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			ID:           "r2",
			Index:        "air_purifiers",
			Type:         "fbGroupTopic",
			Title:        "Máy lọc Dyson rất tốt",
			MainKeywords: []string{"dyson"},
		})
		if gen.calls != 1 {
			t.Fatalf("llm calls = %d, want 1", gen.calls)
		}
		if !out.Analysis.Targeted {
			t.Error("expected targeted result after mention hit")
		}
		if out.Analysis.Sentiment != model.SentimentNegative {
			t.Errorf("sentiment = %q", out.Analysis.Sentiment)
		}
	})

	t.Run("llm cannot override targeting", func(t *testing.T) {
		gen := &fakeGenerator{response: `{"targeted": false, "sentiment": "negative", "confidence": 0.9, "keywords": {"positive": [], "negative": ["tệ"]}, "explanation": "x"}`}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Type:         "fbGroupTopic",
			Title:        "Dùng Grab thấy tệ thật sự",
			MainKeywords: []string{"grab"},
		})
		if !out.Analysis.Targeted {
			t.Error("mention check already established targeting; llm must not undo it")
		}
		// The untargeted invariant neutralized the analysis before the
		// guard re-targeted it.
		if out.Analysis.Sentiment != model.SentimentNeutral {
			t.Errorf("sentiment = %q, want neutral", out.Analysis.Sentiment)
		}
	})

	t.Run("llm failure degrades to neutral zero confidence", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("upstream exploded")}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, err := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Type:         "fbGroupTopic",
			Title:        "Dùng Grab thấy tệ thật sự",
			MainKeywords: []string{"grab"},
		})
		if err != nil {
			t.Fatalf("pipeline errors must be absorbed, got %v", err)
		}
		if out.Analysis.Targeted || out.Analysis.Sentiment != model.SentimentNeutral || out.Analysis.Confidence != 0.0 {
			t.Errorf("got %+v, want untargeted neutral zero-confidence", out.Analysis)
		}
		if !strings.HasPrefix(out.Analysis.Explanation, "Lỗi LLM") {
			t.Errorf("explanation = %q, want llm failure category", out.Analysis.Explanation)
		}
	})

	t.Run("negative comment gets log level 1", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Type:         "fbPageComment",
			Content:      "Grab đợt này tệ quá luôn",
			MainKeywords: []string{"grab"},
		})
		if out.LogLevel != 1 {
			t.Errorf("log level = %d, want 1", out.LogLevel)
		}
	})
}

func TestAnalyzeCommentScope(t *testing.T) {
	ctx := context.Background()

	t.Run("comment matching ignores title and description", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Type:         "fbPageComment",
			Title:        "Bài viết về Grab",
			Content:      "Đồng ý với chủ thớt nha mọi người",
			Description:  "Grab tăng giá",
			MainKeywords: []string{"grab"},
		})
		if gen.calls != 0 {
			t.Errorf("llm calls = %d, want 0: keyword only appears in post context", gen.calls)
		}
		if out.Analysis.Targeted {
			t.Error("expected untargeted result")
		}
	})

	t.Run("comment with empty content falls back to merged text", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		_, _ = uc.Analyze(ctx, sentiment.AnalyzeInput{
			Type:         "fbPageComment",
			Title:        "Grab tăng giá chóng mặt",
			Content:      "",
			Description:  "Nhiều tài xế phản ánh",
			MainKeywords: []string{"grab"},
		})
		if gen.calls != 1 {
			t.Errorf("llm calls = %d, want 1: merged title+description mentions the keyword", gen.calls)
		}
	})
}

func TestAnalyzeCache(t *testing.T) {
	ctx := context.Background()

	t.Run("identical request is served from cache", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		gw := newFakeGateway()
		uc := newTestUsecase(gen, gw, nil)

		input := sentiment.AnalyzeInput{
			ID:           "r3",
			Index:        "rides",
			Type:         "fbGroupTopic",
			Title:        "Grab đợt này tệ quá",
			MainKeywords: []string{"grab"},
		}
		first, _ := uc.Analyze(ctx, input)
		second, _ := uc.Analyze(ctx, input)

		if gen.calls != 1 {
			t.Errorf("llm calls = %d, want 1", gen.calls)
		}
		if gw.sets != 1 {
			t.Errorf("cache stores = %d, want 1", gw.sets)
		}
		if first.Analysis.Sentiment != second.Analysis.Sentiment || first.LogLevel != second.LogLevel {
			t.Error("cached result differs from computed result")
		}
	})

	t.Run("timeout result is not cached", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse, err: context.DeadlineExceeded, failures: 1}
		gw := newFakeGateway()
		uc := newTestUsecase(gen, gw, nil)

		input := sentiment.AnalyzeInput{
			ID:           "r4",
			Index:        "rides",
			Type:         "fbGroupTopic",
			Title:        "Grab đợt này tệ quá",
			MainKeywords: []string{"grab"},
		}
		first, _ := uc.Analyze(ctx, input)
		if first.Analysis.Explanation != sentiment.ExplanationTimeout {
			t.Fatalf("explanation = %q, want timeout result", first.Analysis.Explanation)
		}
		if gw.sets != 0 {
			t.Errorf("cache stores = %d, want 0: timeout payloads must not be pinned for the ttl", gw.sets)
		}

		second, _ := uc.Analyze(ctx, input)
		if gen.calls != 2 {
			t.Errorf("llm calls = %d, want 2: recovered upstream should be retried", gen.calls)
		}
		if second.Analysis.Sentiment != model.SentimentNegative {
			t.Errorf("sentiment = %q, want negative after recovery", second.Analysis.Sentiment)
		}
		if gw.sets != 1 {
			t.Errorf("cache stores = %d, want 1: the recovered result is cacheable", gw.sets)
		}
	})

	t.Run("keyword order does not defeat the cache", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		uc := newTestUsecase(gen, newFakeGateway(), nil)

		base := sentiment.AnalyzeInput{
			Type:         "fbGroupTopic",
			Title:        "Grab đợt này tệ quá",
			MainKeywords: []string{"grab", "be app"},
		}
		uc.Analyze(ctx, base)

		base.MainKeywords = []string{"be app", "grab"}
		uc.Analyze(ctx, base)

		if gen.calls != 1 {
			t.Errorf("llm calls = %d, want 1", gen.calls)
		}
	})
}

func TestAnalyzeTopicFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("missing keywords default from the topic store", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		topics := &fakeTopics{topics: map[string]topic.Topic{
			"rides": {ID: "rides", Name: "Ride hailing", Keywords: []string{"grab"}},
		}}
		uc := newTestUsecase(gen, newFakeGateway(), topics)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Index: "rides",
			Type:  "fbGroupTopic",
			Title: "Grab đợt này tệ quá",
		})
		if gen.calls != 1 {
			t.Errorf("llm calls = %d, want 1: topic keywords should drive the pipeline", gen.calls)
		}
		if !out.Analysis.Targeted {
			t.Error("expected targeted result via topic keywords")
		}
	})

	t.Run("unknown topic behaves like empty keywords", func(t *testing.T) {
		gen := &fakeGenerator{response: negativeResponse}
		topics := &fakeTopics{topics: map[string]topic.Topic{}}
		uc := newTestUsecase(gen, newFakeGateway(), topics)

		out, _ := uc.Analyze(ctx, sentiment.AnalyzeInput{
			Index: "absent",
			Type:  "fbGroupTopic",
			Title: "Grab đợt này tệ quá",
		})
		if gen.calls != 0 {
			t.Errorf("llm calls = %d, want 0", gen.calls)
		}
		if out.Analysis.Explanation != sentiment.ExplanationNoKeywords {
			t.Errorf("explanation = %q", out.Analysis.Explanation)
		}
	})
}
