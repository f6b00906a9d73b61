//go:build unit || e2e

package builder

import (
	"time"

	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerName string
	Email        string
	Phone        string
	PetName      string
	PetBreed     string
	ServiceIDs   []uuid.UUID
	StartTime    time.Time
	Status       string
	Notes        *string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		CustomerName: "Jamie Rivera",
		Email:        "jamie@example.com",
		Phone:        "555-867-5309",
		PetName:      "Biscuit",
		PetBreed:     "Golden Retriever",
		ServiceIDs:   []uuid.UUID{uuid.New()},
		StartTime:    time.Now().Add(48 * time.Hour).Truncate(time.Minute),
		Status:       "pending",
	}
}

func (a *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		CustomerName: a.CustomerName,
		Email:        a.Email,
		Phone:        a.Phone,
		PetName:      a.PetName,
		PetBreed:     a.PetBreed,
		ServiceIDs:   a.ServiceIDs,
		StartTime:    a.StartTime,
		Notes:        a.Notes,
	}
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	services := make([]queries.ServiceLine, len(a.ServiceIDs))
	for i, id := range a.ServiceIDs {
		services[i] = queries.ServiceLine{ID: id, Name: "Full Groom", PriceCents: 8500}
	}
	now := time.Now()
	return &queries.AppointmentView{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CustomerName:  a.CustomerName,
		CustomerEmail: a.Email,
		CustomerPhone: a.Phone,
		PetID:         uuid.New(),
		PetName:       a.PetName,
		PetBreed:      a.PetBreed,
		Services:      services,
		StartTime:     a.StartTime,
		Status:        a.Status,
		Notes:         a.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	a.Notes = &notes
	return a
}

func (a *AppointmentBuilder) WithServiceIDs(ids ...uuid.UUID) *AppointmentBuilder {
	a.ServiceIDs = ids
	return a
}
