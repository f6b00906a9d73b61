// Package notify delivers lead notifications over SMS and email. Every
// provider failure is absorbed into a per-channel outcome; nothing in this
// package propagates a delivery error to the caller.
package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured marks a channel whose provider credentials are absent.
// The channel settles as a failed outcome without any network call.
var ErrNotConfigured = errors.New("notification channel not configured")

type SMSSender interface {
	// Send delivers body to a phone number given as bare digits.
	Send(ctx context.Context, toDigits, body string) error
}

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
