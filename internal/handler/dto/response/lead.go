package response

import (
	"time"

	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"
)

// NotificationFlags is the per-channel delivery report included in the intake
// response. Booleans only; failure detail never leaves the server.
type NotificationFlags struct {
	BusinessSms   bool `json:"businessSms"`
	CustomerSms   bool `json:"customerSms"`
	CustomerEmail bool `json:"customerEmail"`
	BusinessEmail bool `json:"businessEmail"`
}

type SubmitLeadResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Notifications NotificationFlags `json:"notifications"`
}

func FromSubmitLeadResult(result *commands.SubmitLeadResult) *SubmitLeadResponse {
	return &SubmitLeadResponse{
		Success: true,
		Message: result.Message,
		Notifications: NotificationFlags{
			BusinessSms:   result.Notifications.BusinessSMS.Sent,
			CustomerSms:   result.Notifications.CustomerSMS.Sent,
			CustomerEmail: result.Notifications.CustomerEmail.Sent,
			BusinessEmail: result.Notifications.BusinessEmail.Sent,
		},
	}
}

type LeadResponse struct {
	ID                string    `json:"id"`
	NameAndPhone      string    `json:"nameAndPhone"`
	Email             string    `json:"email"`
	NewCustomer       string    `json:"newCustomer"`
	PetsNameAndBreed  string    `json:"petsNameAndBreed"`
	DateTimeRequested *string   `json:"dateTimeRequested,omitempty"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromLeadView(view *queries.LeadView) *LeadResponse {
	return &LeadResponse{
		ID:                view.ID.String(),
		NameAndPhone:      view.NameAndPhone,
		Email:             view.Email,
		NewCustomer:       view.NewCustomer,
		PetsNameAndBreed:  view.PetsNameAndBreed,
		DateTimeRequested: view.DateTimeRequested,
		Message:           view.Message,
		CreatedAt:         view.CreatedAt,
	}
}
