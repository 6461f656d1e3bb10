package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// TokenSource yields the bearer token for an outgoing request, if the caller
// has one. The session provider implements this over the request context so
// the gateway never reaches into global state.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Gateway is the single point of outbound HTTP configuration: base URL,
// shared client, auth header, and response classification. Resource clients
// are thin wrappers over it. There are no retries and no backoff; a failed
// call surfaces as an error and the caller decides what to do.
type Gateway struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource

	// OnSessionExpired, when set, is invoked exactly once per call that the
	// backend rejects with 401.
	OnSessionExpired func()
}

// NewGateway creates a gateway against the given backend base URL.
func NewGateway(baseURL string, tokens TokenSource) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// SetHTTPClient replaces the underlying client. Used by tests.
func (g *Gateway) SetHTTPClient(c *http.Client) {
	g.client = c
}

func (g *Gateway) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.tokens != nil {
		if token, ok := g.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if g.OnSessionExpired != nil {
			g.OnSessionExpired()
		}
		log.Warn().Str("method", method).Str("path", path).Msg("backend rejected session")
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	case http.StatusBadRequest:
		var ve ValidationError
		if err := json.Unmarshal(respBody, &ve); err == nil && len(ve.Fields) > 0 {
			return nil, &ve
		}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &msg); err == nil {
		apiErr.Message = msg.Message
	}
	return nil, apiErr
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := g.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// GetJSON fetches path and decodes the JSON body into out.
func (g *Gateway) GetJSON(ctx context.Context, path string, out any) error {
	return g.doJSON(ctx, http.MethodGet, path, nil, out)
}

// PostJSON posts in as JSON and decodes the response into out (out may be nil).
func (g *Gateway) PostJSON(ctx context.Context, path string, in, out any) error {
	return g.doJSON(ctx, http.MethodPost, path, in, out)
}

// PutJSON puts in as JSON and decodes the response into out (out may be nil).
func (g *Gateway) PutJSON(ctx context.Context, path string, in, out any) error {
	return g.doJSON(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE; the response body is discarded.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// GetBlob fetches a binary body (PDF reports) and returns it with its
// content type.
func (g *Gateway) GetBlob(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := g.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s body: %w", path, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
