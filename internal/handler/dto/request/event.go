package request

import "time"

// RecordEventRequest is the frontend beacon payload. OccurredAt is optional;
// the server clock is used when absent.
type RecordEventRequest struct {
	Kind       string     `json:"kind" binding:"required"`
	VisitorID  string     `json:"visitorId" binding:"required,max=100"`
	Page       string     `json:"page" binding:"max=300"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
}
