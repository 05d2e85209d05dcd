package service

import (
	"context"
)

// CompletionStreamer produces generated text for a prompt as a stream of deltas.
type CompletionStreamer interface {
	StreamCompletion(ctx context.Context, prompt string) (<-chan StreamDelta, error)
}

var _ CompletionStreamer = (*LLMService)(nil)
