package appointment

import (
	"errors"
	"strings"
	"time"

	"pupperazi-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrMissingCustomer      = errors.New("appointment requires a customer")
	ErrMissingPet           = errors.New("appointment requires a pet")
	ErrNoServices           = errors.New("appointment requires at least one service")
	ErrStartTimeInPast      = errors.New("appointment start time cannot be in the past")
	ErrNotesTooLong         = errors.New("notes must be at most 2000 characters")
	ErrAlreadyTerminal      = errors.New("appointment is already completed or cancelled")
	ErrDuplicateServiceLine = errors.New("duplicate service selected")
)

const maxNotesLength = 2000

// Appointment is the booking-wizard aggregate. It always references exactly
// one customer and one pet; services attach through a join table.
type Appointment struct {
	id         uuid.UUID
	customerID uuid.UUID
	petID      uuid.UUID
	serviceIDs []uuid.UUID
	startTime  time.Time
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppointment(
	clk clock.Clock,
	customerID, petID uuid.UUID,
	serviceIDs []uuid.UUID,
	startTime time.Time,
	notes string,
) (*Appointment, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if petID == uuid.Nil {
		return nil, ErrMissingPet
	}
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}
	seen := make(map[uuid.UUID]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateServiceLine
		}
		seen[id] = struct{}{}
	}

	now := clk.Now()
	if startTime.Before(now) {
		return nil, ErrStartTimeInPast
	}

	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	return &Appointment{
		id:         uuid.New(),
		customerID: customerID,
		petID:      petID,
		serviceIDs: serviceIDs,
		startTime:  startTime,
		status:     StatusPending,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Restore rebuilds an aggregate from persisted state.
func Restore(
	id, customerID, petID uuid.UUID,
	serviceIDs []uuid.UUID,
	startTime time.Time,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		customerID: customerID,
		petID:      petID,
		serviceIDs: serviceIDs,
		startTime:  startTime,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) CustomerID() uuid.UUID   { return a.customerID }
func (a *Appointment) PetID() uuid.UUID        { return a.petID }
func (a *Appointment) ServiceIDs() []uuid.UUID { return a.serviceIDs }
func (a *Appointment) StartTime() time.Time    { return a.startTime }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Notes() string           { return a.notes }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }

// ChangeStatus applies a staff-driven transition. Terminal states never move
// again.
func (a *Appointment) ChangeStatus(clk clock.Clock, next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	a.updatedAt = clk.Now()
	return nil
}
