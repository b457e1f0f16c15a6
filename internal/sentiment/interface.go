package sentiment

import "context"

// UseCase runs the targeting-and-classification pipeline for one record.
type UseCase interface {
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
