package queries

import (
	"context"
	"time"

	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
)

// AppointmentView joins the appointment with its customer, pet and service
// lines for display.
type AppointmentView struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PetID         uuid.UUID
	PetName       string
	PetBreed      string
	Services      []ServiceLine
	StartTime     time.Time
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ServiceLine struct {
	ID         uuid.UUID
	Name       string
	PriceCents int32
}

// ServiceView is one bookable grooming service.
type ServiceView struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceCents  int32
	DurationMin int32
	Active      bool
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListRecent(ctx context.Context, limit int32) ([]*AppointmentView, error)
}

type ServiceReadStore interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
}

type AppointmentQueries interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListAppointments(ctx context.Context, limit int32) ([]*AppointmentView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
}

type appointmentQueriesImpl struct {
	appointments AppointmentReadStore
	services     ServiceReadStore
}

func NewAppointmentQueries(appointments AppointmentReadStore, services ServiceReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{
		appointments: appointments,
		services:     services,
	}
}

func (q *appointmentQueriesImpl) GetAppointment(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

const defaultAppointmentListLimit = 100

func (q *appointmentQueriesImpl) ListAppointments(ctx context.Context, limit int32) ([]*AppointmentView, error) {
	if limit <= 0 || limit > defaultAppointmentListLimit {
		limit = defaultAppointmentListLimit
	}
	return q.appointments.ListRecent(ctx, limit)
}

func (q *appointmentQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.services.ListActive(ctx)
}
