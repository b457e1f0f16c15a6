package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Generate sends a generation request and returns the raw text response
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request.
// The pipeline sends one fully-rendered prompt per call; temperature defaults
// to 0 so identical prompts produce identical classifications.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
}

// Response represents a normalized LLM generation response.
// Text is untrusted raw output — callers must run it through the response
// parser before using it.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
