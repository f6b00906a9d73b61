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

// ResendClient sends HTML email through the Resend REST API.
type ResendClient struct {
	apiKey  string
	baseURL string
	from    string
	http    *http.Client
}

func NewResendClient(cfg config.EmailConfig) *ResendClient {
	return &ResendClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimSpace(cfg.APIURL),
		from:    strings.TrimSpace(cfg.From),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

func (c *ResendClient) Send(ctx context.Context, msg EmailMessage) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	raw, err := json.Marshal(resendRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("email provider returned status %d", resp.StatusCode))
	}
	return nil
}
