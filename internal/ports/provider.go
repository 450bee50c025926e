package ports

import "context"

// GenerateResult is one successful completion from the inference server.
type GenerateResult struct {
	Text  string
	Model string
}

// Provider is a local LLM inference backend. Generate tries the configured
// model candidates in preference order and returns the first success.
type Provider interface {
	Generate(ctx context.Context, prompt string) (GenerateResult, error)
	CheckHealth(ctx context.Context) (bool, error)
	Candidates() []string
}
