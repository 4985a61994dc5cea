// Package apiclient wraps the remote user REST API. Every failure surfaces
// as a typed error; the client never panics across its boundary.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// CredentialSource supplies the bearer credential for one call. It is read
// fresh on every request, never cached inside the client.
type CredentialSource interface {
	Credential(ctx context.Context) (string, bool)
}

// Client talks to the user API at a single configured origin.
type Client struct {
	baseURL string
	hc      *http.Client
	creds   CredentialSource
	log     zerolog.Logger
}

func New(baseURL string, creds CredentialSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		log:     log,
	}
}

// do issues one JSON request. When authed, the credential is attached as a
// bearer token; a missing credential short-circuits without network I/O.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var token string
	if authed {
		var ok bool
		token, ok = c.creds.Credential(ctx)
		if !ok {
			return ErrUnauthorized
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: fmt.Errorf("encode body: %w", err)}
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("path", path).Err(err).Msg("user api unreachable")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// errorMessage pulls {"message": ...} out of an error body, falling back to a
// generic status-based message when the body is absent or not JSON.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("Error: %s", http.StatusText(resp.StatusCode))
}
