//go:build unit || e2e

package builder

import (
	"time"

	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/infra/notify"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeadBuilder struct {
	NameAndPhone      string
	Email             string
	NewCustomer       string
	PetsNameAndBreed  string
	DateTimeRequested string
	Message           string
}

func NewLeadBuilder() *LeadBuilder {
	return &LeadBuilder{
		NameAndPhone:      "Jamie Rivera - 555-867-5309",
		Email:             "jamie@example.com",
		NewCustomer:       "yes",
		PetsNameAndBreed:  "Biscuit - Golden Retriever",
		DateTimeRequested: "Saturday morning",
		Message:           "Looking for a full groom and nail trim for my golden.",
	}
}

func (l *LeadBuilder) BuildDTO() reqdto.SubmitLeadRequest {
	return reqdto.SubmitLeadRequest{
		NameAndPhone:      l.NameAndPhone,
		Email:             l.Email,
		NewCustomer:       l.NewCustomer,
		PetsNameAndBreed:  l.PetsNameAndBreed,
		DateTimeRequested: l.DateTimeRequested,
		Message:           l.Message,
	}
}

func (l *LeadBuilder) BuildView() *queries.LeadView {
	date := l.DateTimeRequested
	return &queries.LeadView{
		ID:                uuid.New(),
		NameAndPhone:      l.NameAndPhone,
		Email:             l.Email,
		NewCustomer:       l.NewCustomer,
		PetsNameAndBreed:  l.PetsNameAndBreed,
		DateTimeRequested: &date,
		Message:           l.Message,
		CreatedAt:         time.Now(),
	}
}

func (l *LeadBuilder) BuildSubmitResult() *commands.SubmitLeadResult {
	sent := notify.Outcome{Attempted: true, Sent: true}
	return &commands.SubmitLeadResult{
		LeadID:  uuid.New(),
		Message: "Thanks for reaching out! We'll get back to you soon.",
		Notifications: notify.Outcomes{
			BusinessSMS:   sent,
			CustomerSMS:   sent,
			CustomerEmail: sent,
			BusinessEmail: sent,
		},
	}
}

func (l *LeadBuilder) WithMessage(message string) *LeadBuilder {
	l.Message = message
	return l
}

func (l *LeadBuilder) WithNameAndPhone(v string) *LeadBuilder {
	l.NameAndPhone = v
	return l
}
