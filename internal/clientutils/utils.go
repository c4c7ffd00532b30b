// Package clientutils holds the HTTP plumbing shared by the provider
// clients: JSON POST requests, raw binary POST requests, and SSE streams.
package clientutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	voxkit "github.com/voxkit/voxkit-go"
	"github.com/voxkit/voxkit-go/internal/sse"
)

// RequestConfig holds configuration for a POST request.
type RequestConfig struct {
	URL     string
	Headers map[string]string
	Body    any
}

func newJSONRequest(ctx context.Context, config RequestConfig) (*http.Request, error) {
	reqBody, err := json.Marshal(config.Body)
	if err != nil {
		return nil, voxkit.NewInvalidInputError(fmt.Sprintf("failed to marshal request: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, voxkit.NewTransportError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// DoJSON performs a JSON POST request and unmarshals the JSON response.
func DoJSON[T any](ctx context.Context, client *http.Client, config RequestConfig) (*T, error) {
	respBody, err := DoRaw(ctx, client, config)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, voxkit.NewInvariantError("", fmt.Sprintf("failed to unmarshal response: %s", err))
	}

	return &result, nil
}

// DoRaw performs a JSON POST request and returns the raw response body.
// Used for endpoints that answer with binary audio instead of JSON.
func DoRaw(ctx context.Context, client *http.Client, config RequestConfig) ([]byte, error) {
	req, err := newJSONRequest(ctx, config)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, voxkit.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, voxkit.NewTransportError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, voxkit.NewStatusCodeError(resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// SSEStream yields events of type T decoded from an SSE response body.
type SSEStream[T any] struct {
	response *http.Response
	scanner  *sse.Scanner

	curr *T
	err  error
}

// Next advances to the next decoded event.
func (s *SSEStream[T]) Next() bool {
	for s.scanner.Next() {
		event := s.scanner.Current()
		if event.Data == "[DONE]" {
			return false
		}

		var decoded T
		if err := json.Unmarshal([]byte(event.Data), &decoded); err != nil {
			s.err = voxkit.NewInvariantError("", fmt.Sprintf("failed to unmarshal sse event: %s", err))
			return false
		}
		s.curr = &decoded
		return true
	}

	if err := s.scanner.Err(); err != nil {
		s.err = voxkit.NewTransportError(err)
	}
	return false
}

// Current returns the event decoded by the last successful Next call.
func (s *SSEStream[T]) Current() *T {
	return s.curr
}

// Err returns a terminal stream error, if any.
func (s *SSEStream[T]) Err() error {
	return s.err
}

// Close closes the underlying response body.
func (s *SSEStream[T]) Close() error {
	return s.response.Body.Close()
}

// DoSSE performs a streaming POST request and returns a typed SSE stream.
func DoSSE[T any](ctx context.Context, client *http.Client, config RequestConfig) (*SSEStream[T], error) {
	req, err := newJSONRequest(ctx, config)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := client.Do(req)
	if err != nil {
		return nil, voxkit.NewTransportError(err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		return nil, voxkit.NewStatusCodeError(resp.StatusCode, string(respBody))
	}

	return &SSEStream[T]{
		response: resp,
		scanner:  sse.NewScanner(resp.Body),
	}, nil
}
