package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutriplan/backend/internal/service"
)

// MockCompletionStreamer is a mock implementation of service.CompletionStreamer
type MockCompletionStreamer struct {
	mock.Mock
}

// StreamCompletion mocks the StreamCompletion method
func (m *MockCompletionStreamer) StreamCompletion(ctx context.Context, prompt string) (<-chan service.StreamDelta, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan service.StreamDelta), args.Error(1)
}

// Deltas returns a closed channel carrying the given text deltas in order.
func Deltas(texts ...string) <-chan service.StreamDelta {
	ch := make(chan service.StreamDelta, len(texts))
	for _, text := range texts {
		ch <- service.StreamDelta{Text: text}
	}
	close(ch)
	return ch
}

// FailingDeltas is like Deltas but ends the stream with err.
func FailingDeltas(err error, texts ...string) <-chan service.StreamDelta {
	ch := make(chan service.StreamDelta, len(texts)+1)
	for _, text := range texts {
		ch <- service.StreamDelta{Text: text}
	}
	ch <- service.StreamDelta{Err: err}
	close(ch)
	return ch
}
