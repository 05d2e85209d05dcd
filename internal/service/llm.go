package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pageza/nutriplan/backend/config"
)

// ErrMissingPrompt is returned when a generation request carries no prompt.
var ErrMissingPrompt = errors.New("no prompt in the request")

// ProviderError is returned when the model provider answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request failed with status %d: %s", e.StatusCode, e.Body)
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a streaming chat completion request
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamDelta is one piece of generated text, or the error that ended the stream.
type StreamDelta struct {
	Text string
	Err  error
}

// LLMService streams chat completions from an OpenAI-compatible API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg == nil || cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set", config.ErrMissingCredential)
	}

	// No overall timeout: a plan can take minutes to stream and the caller's
	// context decides when to give up.
	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{},
	}, nil
}

// StreamCompletion sends the prompt as a single system message and returns
// the generated text deltas. The channel is closed when the provider finishes,
// the stream fails or ctx is cancelled.
func (s *LLMService) StreamCompletion(ctx context.Context, prompt string) (<-chan StreamDelta, error) {
	if prompt == "" {
		return nil, ErrMissingPrompt
	}

	payload, err := json.Marshal(ChatRequest{
		Model:    s.model,
		Messages: []Message{{Role: "system", Content: prompt}},
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[LLMService] provider request failed with status %d", resp.StatusCode)
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	ch := make(chan StreamDelta)
	go func() {
		defer close(ch)
		defer resp.Body.Close()
		readEvents(ctx, resp.Body, ch)
	}()
	return ch, nil
}

// readEvents decodes server-sent events until [DONE], EOF or cancellation.
func readEvents(ctx context.Context, body io.Reader, ch chan<- StreamDelta) {
	send := func(d StreamDelta) bool {
		select {
		case ch <- d:
			return true
		case <-ctx.Done():
			return false
		}
	}

	reader := bufio.NewReader(body)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); strings.HasPrefix(line, "data:") {
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "[DONE]" {
				return
			}

			var chunk chatChunk
			if perr := json.Unmarshal([]byte(data), &chunk); perr != nil {
				send(StreamDelta{Err: fmt.Errorf("failed to parse stream chunk: %w", perr)})
				return
			}
			for _, choice := range chunk.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				if !send(StreamDelta{Text: choice.Delta.Content}) {
					return
				}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			send(StreamDelta{Err: fmt.Errorf("failed to read stream: %w", err)})
			return
		}
	}
}
