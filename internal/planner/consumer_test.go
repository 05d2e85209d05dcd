package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(chunks ...Chunk) <-chan Chunk {
	ch := make(chan Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func TestConsumePublishesAccumulatedText(t *testing.T) {
	var published []string
	text, err := Consume(context.Background(), feed(
		Chunk{Text: "<h4>B"},
		Chunk{Text: "reakfast</h4>"},
		Chunk{Text: "<ul><li>Eggs</li></ul>"},
	), func(acc string) { published = append(published, acc) })

	require.NoError(t, err)
	assert.Equal(t, "<h4>Breakfast</h4><ul><li>Eggs</li></ul>", text)
	assert.Equal(t, []string{
		"<h4>B",
		"<h4>Breakfast</h4>",
		"<h4>Breakfast</h4><ul><li>Eggs</li></ul>",
	}, published)
}

func TestConsumeStripsFences(t *testing.T) {
	text, err := Consume(context.Background(), feed(
		Chunk{Text: "```html\n<h4>Lunch</h4>"},
		Chunk{Text: "\n```"},
	), nil)

	require.NoError(t, err)
	assert.Equal(t, "\n<h4>Lunch</h4>\n", text)
}

func TestConsumeDiscardsTextOnError(t *testing.T) {
	readErr := &StreamReadError{Err: errors.New("connection reset")}
	text, err := Consume(context.Background(), feed(
		Chunk{Text: "<h4>partial"},
		Chunk{Err: readErr},
	), func(string) {})

	assert.Empty(t, text)
	assert.ErrorIs(t, err, readErr.Err)
}

func TestConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, err := Consume(ctx, make(chan Chunk), nil)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, context.Canceled)
}
