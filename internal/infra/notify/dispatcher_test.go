//go:build unit

package notify_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pupperazi-api/internal/domain/lead"
	"pupperazi-api/internal/infra/notify"
	"pupperazi-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMS struct {
	mu    sync.Mutex
	sent  []string // destination digits
	err   error
	delay time.Duration
}

func (f *fakeSMS) Send(_ context.Context, toDigits, _ string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.sent = append(f.sent, toDigits)
	f.mu.Unlock()
	return f.err
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []notify.EmailMessage
	err  error
}

func (f *fakeEmail) Send(_ context.Context, msg notify.EmailMessage) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfigs() (config.SMSConfig, config.EmailConfig) {
	return config.SMSConfig{BusinessPhone: "15550001111"},
		config.EmailConfig{AdminNotify: "owner@pupperazipetspa.com"}
}

func submission(t *testing.T, nameAndPhone string) lead.Submission {
	t.Helper()
	sub, verr := lead.NewSubmission(
		nameAndPhone,
		"jane@example.com",
		"yes",
		"Biscuit, golden retriever",
		"",
		"Looking for a full groom next week.",
	)
	require.Nil(t, verr)
	return sub
}

func TestDispatch(t *testing.T) {
	t.Run("all four channels succeed", func(t *testing.T) {
		sms := &fakeSMS{}
		email := &fakeEmail{}
		smsCfg, emailCfg := testConfigs()
		d := notify.NewDispatcher(smsCfg, emailCfg, sms, email, discardLogger())

		out := d.Dispatch(context.Background(), submission(t, "Jane Doe - 555-867-5309"))

		assert.True(t, out.BusinessSMS.Sent)
		assert.True(t, out.CustomerSMS.Sent)
		assert.True(t, out.CustomerEmail.Sent)
		assert.True(t, out.BusinessEmail.Sent)

		assert.ElementsMatch(t, []string{"15550001111", "5558675309"}, sms.sent)
		require.Len(t, email.sent, 2)
	})

	t.Run("customer SMS skipped below ten digits, business SMS still attempted", func(t *testing.T) {
		sms := &fakeSMS{}
		smsCfg, emailCfg := testConfigs()
		d := notify.NewDispatcher(smsCfg, emailCfg, sms, &fakeEmail{}, discardLogger())

		out := d.Dispatch(context.Background(), submission(t, "Jane - 555-1"))

		assert.False(t, out.CustomerSMS.Attempted)
		assert.False(t, out.CustomerSMS.Sent)
		assert.True(t, out.BusinessSMS.Sent)
		assert.Equal(t, []string{"15550001111"}, sms.sent)
	})

	t.Run("email failure does not block SMS channels", func(t *testing.T) {
		sms := &fakeSMS{}
		email := &fakeEmail{err: notify.ErrNotConfigured}
		smsCfg, emailCfg := testConfigs()
		d := notify.NewDispatcher(smsCfg, emailCfg, sms, email, discardLogger())

		out := d.Dispatch(context.Background(), submission(t, "Jane Doe - 555-867-5309"))

		assert.True(t, out.BusinessSMS.Sent)
		assert.True(t, out.CustomerSMS.Sent)
		assert.False(t, out.CustomerEmail.Sent)
		assert.ErrorIs(t, out.CustomerEmail.Err, notify.ErrNotConfigured)
		assert.False(t, out.BusinessEmail.Sent)
	})

	t.Run("slow SMS provider does not delay outcome slots independence", func(t *testing.T) {
		sms := &fakeSMS{delay: 50 * time.Millisecond, err: notify.ErrNotConfigured}
		email := &fakeEmail{}
		smsCfg, emailCfg := testConfigs()
		d := notify.NewDispatcher(smsCfg, emailCfg, sms, email, discardLogger())

		out := d.Dispatch(context.Background(), submission(t, "Jane Doe - 555-867-5309"))

		// All channels settled despite both SMS attempts failing slowly.
		assert.False(t, out.BusinessSMS.Sent)
		assert.False(t, out.CustomerSMS.Sent)
		assert.True(t, out.CustomerEmail.Sent)
		assert.True(t, out.BusinessEmail.Sent)
	})

	t.Run("missing business phone degrades that channel only", func(t *testing.T) {
		smsCfg, emailCfg := testConfigs()
		smsCfg.BusinessPhone = ""
		d := notify.NewDispatcher(smsCfg, emailCfg, &fakeSMS{}, &fakeEmail{}, discardLogger())

		out := d.Dispatch(context.Background(), submission(t, "Jane Doe - 555-867-5309"))

		assert.True(t, out.BusinessSMS.Attempted)
		assert.False(t, out.BusinessSMS.Sent)
		assert.ErrorIs(t, out.BusinessSMS.Err, notify.ErrNotConfigured)
		assert.True(t, out.CustomerSMS.Sent)
	})

	t.Run("business email carries reply-to and admin destination", func(t *testing.T) {
		email := &fakeEmail{}
		smsCfg, emailCfg := testConfigs()
		d := notify.NewDispatcher(smsCfg, emailCfg, &fakeSMS{}, email, discardLogger())

		d.Dispatch(context.Background(), submission(t, "Jane Doe - 555-867-5309"))

		var admin *notify.EmailMessage
		for i := range email.sent {
			if email.sent[i].To == "owner@pupperazipetspa.com" {
				admin = &email.sent[i]
			}
		}
		require.NotNil(t, admin)
		assert.Equal(t, "jane@example.com", admin.ReplyTo)
	})
}
