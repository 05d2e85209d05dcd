package planner

import (
	"context"
	"strings"

	"github.com/pageza/nutriplan/backend/internal/plantext"
)

// Consume drains chunks, strips code fences from each one and calls publish
// with the whole text accumulated so far after every chunk. It returns the
// final text, or "" and the error that ended the stream.
func Consume(ctx context.Context, chunks <-chan Chunk, publish func(string)) (string, error) {
	var acc strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				return acc.String(), nil
			}
			if chunk.Err != nil {
				return "", chunk.Err
			}
			acc.WriteString(plantext.StripFences(chunk.Text))
			if publish != nil {
				publish(acc.String())
			}
		}
	}
}
