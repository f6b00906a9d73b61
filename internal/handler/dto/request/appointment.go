package request

import (
	"strings"
	"time"

	"pupperazi-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	CustomerName string      `json:"customerName" binding:"required,min=2,max=200"`
	Email        string      `json:"email" binding:"required,email"`
	Phone        string      `json:"phone" binding:"required,min=7,max=30"`
	PetName      string      `json:"petName" binding:"required,min=1,max=100"`
	PetBreed     string      `json:"petBreed" binding:"required,min=2,max=100"`
	ServiceIDs   []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	StartTime    time.Time   `json:"startTime" binding:"required"`
	Notes        *string     `json:"notes,omitempty"`
}

func (r CreateAppointmentRequest) GetNotes() string {
	return strings.TrimSpace(patch.Coalesce(r.Notes, ""))
}

type ChangeAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
