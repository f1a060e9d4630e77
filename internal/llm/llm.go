package llm

import (
	"context"
	"errors"
)

// MaxOutputTokens caps the model reply size for one analysis.
const MaxOutputTokens = 16000

// Client abstracts LLM providers for RFP analysis. Implementations perform
// exactly one round-trip and return the raw reply text; response recovery
// and validation happen in the analysis package.
type Client interface {
	AnalyzeRFP(ctx context.Context, input AnalyzeInput) (string, error)
}

// AnalyzeInput captures the inputs needed for one RFP analysis.
type AnalyzeInput struct {
	PDF           []byte
	FileName      string
	PromptVersion string
}

// ErrTimeout marks a request that exceeded the provider deadline. It is
// surfaced distinctly from other transport failures.
var ErrTimeout = errors.New("llm request timed out")

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// AnalyzeRFP returns ErrNotImplemented.
func (PlaceholderClient) AnalyzeRFP(ctx context.Context, input AnalyzeInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}
