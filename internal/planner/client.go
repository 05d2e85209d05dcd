// Package planner drives plan generation from the front end's side: it talks
// to the generation endpoint, accumulates the streamed HTML and publishes
// snapshots of it to whoever renders the plan.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/pageza/nutriplan/backend/internal/types"
)

const readBufferSize = 4096

// Chunk is one decoded piece of the response body, or the error that ended it.
type Chunk struct {
	Text string
	Err  error
}

// RequestFailedError is returned when the generation endpoint answers with a non-2xx status.
type RequestFailedError struct {
	StatusCode int
	Status     string
	Reason     string
}

func (e *RequestFailedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("generation request failed: %s", e.Status)
	}
	return fmt.Sprintf("generation request failed: %s: %s", e.Status, e.Reason)
}

// StreamReadError wraps a failure while reading an already started response.
type StreamReadError struct {
	Err error
}

func (e *StreamReadError) Error() string {
	return fmt.Sprintf("plan stream interrupted: %v", e.Err)
}

func (e *StreamReadError) Unwrap() error {
	return e.Err
}

// Client calls the plan API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the API at baseURL. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Generate posts the prompt to /api/generate and returns the response body as
// a stream of text chunks. Multi-byte characters split across reads are held
// back until complete. The channel is closed at end of body, on a read error
// or when ctx is cancelled.
func (c *Client) Generate(ctx context.Context, prompt string) (<-chan Chunk, error) {
	resp, err := c.post(ctx, "/api/generate", types.GenerateRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	ch := make(chan Chunk)
	go func() {
		defer close(ch)
		defer resp.Body.Close()
		readChunks(ctx, resp.Body, ch)
	}()
	return ch, nil
}

// Options fetches the language and vibe catalogs.
func (c *Client) Options(ctx context.Context) (*types.OptionsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/options", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch options: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out types.OptionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	reason, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &RequestFailedError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Reason:     strings.TrimSpace(string(reason)),
	}
}

func readChunks(ctx context.Context, body io.Reader, ch chan<- Chunk) {
	send := func(c Chunk) bool {
		select {
		case ch <- c:
			return true
		case <-ctx.Done():
			return false
		}
	}

	buf := make([]byte, readBufferSize)
	var pending []byte
	for {
		n, err := body.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			cut := completePrefix(pending)
			if cut > 0 {
				text := strings.ToValidUTF8(string(pending[:cut]), string(utf8.RuneError))
				pending = append(pending[:0], pending[cut:]...)
				if !send(Chunk{Text: text}) {
					return
				}
			}
		}

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if !errors.Is(err, io.EOF) {
				send(Chunk{Err: &StreamReadError{Err: err}})
				return
			}
			if len(pending) > 0 {
				send(Chunk{Text: strings.ToValidUTF8(string(pending), string(utf8.RuneError))})
			}
			return
		}
	}
}

// completePrefix returns the length of the longest prefix of b that does not
// end inside a multi-byte UTF-8 sequence.
func completePrefix(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			return len(b)
		}
		return i
	}
	return len(b)
}
