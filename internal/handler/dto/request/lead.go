package request

import (
	"pupperazi-api/internal/domain/lead"
)

// SubmitLeadRequest mirrors the popup/contact form payload. Field-level
// validation lives in the domain so every violation can be reported at once;
// binding only guards the JSON shape.
type SubmitLeadRequest struct {
	NameAndPhone      string `json:"nameAndPhone"`
	Email             string `json:"email"`
	NewCustomer       string `json:"newCustomer"`
	PetsNameAndBreed  string `json:"petsNameAndBreed"`
	DateTimeRequested string `json:"dateTimeRequested,omitempty"`
	Message           string `json:"message"`
}

func (r SubmitLeadRequest) ToDomain() (lead.Submission, *lead.ValidationError) {
	return lead.NewSubmission(
		r.NameAndPhone,
		r.Email,
		r.NewCustomer,
		r.PetsNameAndBreed,
		r.DateTimeRequested,
		r.Message,
	)
}
