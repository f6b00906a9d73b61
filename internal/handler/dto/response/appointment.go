package response

import (
	"time"

	"pupperazi-api/internal/usecase/queries"
)

type AppointmentResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	CustomerPhone string                `json:"customerPhone"`
	PetID         string                `json:"petId"`
	PetName       string                `json:"petName"`
	PetBreed      string                `json:"petBreed"`
	Services      []ServiceLineResponse `json:"services"`
	StartTime     time.Time             `json:"startTime"`
	Status        string                `json:"status"`
	Notes         *string               `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type ServiceLineResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int32  `json:"priceCents"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	services := make([]ServiceLineResponse, len(view.Services))
	for i, s := range view.Services {
		services[i] = ServiceLineResponse{
			ID:         s.ID.String(),
			Name:       s.Name,
			PriceCents: s.PriceCents,
		}
	}
	return &AppointmentResponse{
		ID:            view.ID.String(),
		CustomerID:    view.CustomerID.String(),
		CustomerName:  view.CustomerName,
		CustomerEmail: view.CustomerEmail,
		CustomerPhone: view.CustomerPhone,
		PetID:         view.PetID.String(),
		PetName:       view.PetName,
		PetBreed:      view.PetBreed,
		Services:      services,
		StartTime:     view.StartTime,
		Status:        view.Status,
		Notes:         view.Notes,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int32  `json:"priceCents"`
	DurationMin int32  `json:"durationMin"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          view.ID.String(),
		Name:        view.Name,
		Description: view.Description,
		PriceCents:  view.PriceCents,
		DurationMin: view.DurationMin,
	}
}
