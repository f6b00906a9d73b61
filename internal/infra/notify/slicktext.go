package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pupperazi-api/internal/pkg/config"
	"pupperazi-api/internal/pkg/errs"
)

// SlickTextClient posts messages to the SlickText v1 REST API. The provider
// accepts two request-body shapes; see Send for the fallback rules.
type SlickTextClient struct {
	apiKey  string
	brandID string
	baseURL string
	http    *http.Client
}

func NewSlickTextClient(cfg config.SMSConfig) *SlickTextClient {
	return &SlickTextClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		brandID: strings.TrimSpace(cfg.BrandID),
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// requestShapes returns the known provider body shapes in priority order.
// The contact-based shape is what current API docs describe; the raw-number
// shape is accepted by older brand configurations.
func requestShapes(toDigits, body string) []map[string]any {
	return []map[string]any{
		{
			"contact": map[string]string{"phone": toDigits},
			"body":    body,
		},
		{
			"number": toDigits,
			"body":   body,
		},
	}
}

// Send tries each known request shape in fixed priority order and stops at
// the first 2xx. A 400/401/403 means the brand rejected this shape and the
// next one is tried; any other status or a transport error is terminal for
// the whole attempt. Response bodies are never inspected.
func (c *SlickTextClient) Send(ctx context.Context, toDigits, body string) error {
	if c.apiKey == "" || c.brandID == "" {
		return ErrNotConfigured
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.brandID)

	var lastStatus int
	for _, shape := range requestShapes(toDigits, body) {
		status, err := c.post(ctx, url, shape)
		if err != nil {
			return errs.Wrap(err, "sms request failed")
		}
		if status >= 200 && status < 300 {
			return nil
		}
		lastStatus = status
		if status != http.StatusBadRequest && status != http.StatusUnauthorized && status != http.StatusForbidden {
			break
		}
	}

	return errs.New(fmt.Sprintf("sms provider returned status %d", lastStatus))
}

func (c *SlickTextClient) post(ctx context.Context, url string, payload map[string]any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, nil
}
