package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint. Any
	// OpenAI-compatible server (vLLM, GPT-OSS gateways) works here.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default per-call HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens caps generation output size.
	DefaultMaxTokens = 500
)
