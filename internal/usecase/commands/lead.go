package commands

import (
	"context"
	"log/slog"
	"strings"

	"pupperazi-api/internal/domain/lead"
	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/infra/notify"
	"pupperazi-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

// LeadNotifier fans a validated submission out to the notification channels
// and always settles; it never returns an error.
type LeadNotifier interface {
	Dispatch(ctx context.Context, sub lead.Submission) notify.Outcomes
}

type LeadRepository interface {
	Create(ctx context.Context, sub lead.Submission) (uuid.UUID, error)
}

type SubmitLeadResult struct {
	LeadID        uuid.UUID
	Message       string
	Notifications notify.Outcomes
}

type LeadCommands interface {
	// Submit validates, persists and fans out one inquiry. A *lead.ValidationError
	// is returned for rejected payloads; notification failures never surface.
	Submit(ctx context.Context, req reqdto.SubmitLeadRequest) (*SubmitLeadResult, error)
}

type leadCommandsImpl struct {
	leadRepo LeadRepository
	notifier LeadNotifier
}

func NewLeadCommands(leadRepo LeadRepository, notifier LeadNotifier) LeadCommands {
	return &leadCommandsImpl{
		leadRepo: leadRepo,
		notifier: notifier,
	}
}

func (l *leadCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitLeadRequest) (*SubmitLeadResult, error) {
	sub, verr := req.ToDomain()
	if verr != nil {
		return nil, verr
	}

	// The lead row is written before any notification attempt so that
	// provider flakiness can never lose an inquiry.
	leadID, err := l.leadRepo.Create(ctx, sub)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	outcomes := l.notifier.Dispatch(ctx, sub)
	logChannelFailures(leadID, outcomes)

	return &SubmitLeadResult{
		LeadID:        leadID,
		Message:       confirmationMessage(outcomes),
		Notifications: outcomes,
	}, nil
}

// confirmationMessage concatenates an acknowledgement clause per succeeded
// channel. The customer only ever sees success wording; failed channels are
// simply not mentioned.
func confirmationMessage(out notify.Outcomes) string {
	clauses := []string{"Thanks! Your grooming request has been received."}
	if out.BusinessSMS.Sent || out.BusinessEmail.Sent {
		clauses = append(clauses, "Our team has been notified and will reach out shortly.")
	}
	if out.CustomerEmail.Sent {
		clauses = append(clauses, "We've sent you a confirmation email.")
	}
	if out.CustomerSMS.Sent {
		clauses = append(clauses, "You'll also receive a text confirmation.")
	}
	return strings.Join(clauses, " ")
}

func logChannelFailures(leadID uuid.UUID, out notify.Outcomes) {
	channels := []struct {
		name    string
		outcome notify.Outcome
	}{
		{"business_sms", out.BusinessSMS},
		{"customer_sms", out.CustomerSMS},
		{"customer_email", out.CustomerEmail},
		{"business_email", out.BusinessEmail},
	}
	for _, ch := range channels {
		if ch.outcome.Attempted && !ch.outcome.Sent {
			slog.Warn("lead notification channel failed",
				"lead_id", leadID,
				"channel", ch.name,
				"error", ch.outcome.Err,
			)
		}
	}
}
