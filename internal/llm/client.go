package llm

import (
	"context"
)

// Client is the capability the pipeline needs from a generative backend:
// one prompt in, one text completion out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
