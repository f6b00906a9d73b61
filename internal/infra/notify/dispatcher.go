package notify

import (
	"context"
	"log/slog"
	"sync"

	"pupperazi-api/internal/domain/lead"
	"pupperazi-api/internal/pkg/config"
)

// Outcome is the settled result of one channel attempt. Attempted is false
// only when the channel was skipped up front (customer SMS without a usable
// phone number).
type Outcome struct {
	Attempted bool
	Sent      bool
	Err       error
}

// Outcomes has one slot per channel. Each slot is written by exactly one
// goroutine during Dispatch, so no locking is needed.
type Outcomes struct {
	BusinessSMS   Outcome
	CustomerSMS   Outcome
	CustomerEmail Outcome
	BusinessEmail Outcome
}

// Dispatcher fans a validated submission out to up to four channels.
// Constructed once at process start from configuration; read-only afterwards.
type Dispatcher struct {
	sms           SMSSender
	email         EmailSender
	businessPhone string
	adminEmail    string
	logger        *slog.Logger
}

func NewDispatcher(smsCfg config.SMSConfig, emailCfg config.EmailConfig, sms SMSSender, email EmailSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sms:           sms,
		email:         email,
		businessPhone: smsCfg.BusinessPhone,
		adminEmail:    emailCfg.AdminNotify,
		logger:        logger,
	}
}

// Dispatch attempts every applicable channel concurrently and waits for all
// of them to settle. A slow or failing channel never prevents the others
// from completing, and no failure is ever returned to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, sub lead.Submission) Outcomes {
	var out Outcomes
	var wg sync.WaitGroup

	attempt := func(slot *Outcome, channel string, send func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slot.Attempted = true
			if err := send(); err != nil {
				slot.Err = err
				d.logger.Warn("notification channel failed", "channel", channel, "error", err.Error())
				return
			}
			slot.Sent = true
		}()
	}

	attempt(&out.BusinessSMS, "business_sms", func() error {
		if d.businessPhone == "" {
			return ErrNotConfigured
		}
		return d.sms.Send(ctx, d.businessPhone, businessSMSBody(sub))
	})

	if sub.CanReceiveSMS() {
		attempt(&out.CustomerSMS, "customer_sms", func() error {
			return d.sms.Send(ctx, sub.PhoneDigits(), customerSMSBody(sub))
		})
	}

	attempt(&out.CustomerEmail, "customer_email", func() error {
		return d.email.Send(ctx, customerEmail(sub))
	})

	attempt(&out.BusinessEmail, "business_email", func() error {
		if d.adminEmail == "" {
			return ErrNotConfigured
		}
		return d.email.Send(ctx, businessEmail(sub, d.adminEmail))
	})

	wg.Wait()
	return out
}
