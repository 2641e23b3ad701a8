// Package proxy holds the thin relay endpoints the web client calls
// instead of talking to third-party APIs directly. Each handler
// validates the request body, forwards to a fixed upstream, and relays
// the upstream status and JSON verbatim.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Relay performs the upstream calls. One instance is shared by all
// proxy handlers.
type Relay struct {
	client *http.Client
}

func NewRelay() *Relay {
	return &Relay{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetJSON issues a GET and returns the upstream status and body.
func (r *Relay) GetJSON(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy: build request: %w", err)
	}

	return r.do(req)
}

// PostJSON issues a POST with a JSON body and optional headers, and
// returns the upstream status and body.
func (r *Relay) PostJSON(ctx context.Context, url string, headers map[string]string, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy: marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("proxy: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return r.do(req)
}

func (r *Relay) do(req *http.Request) (int, []byte, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy: read response: %w", err)
	}

	return resp.StatusCode, body, nil
}
