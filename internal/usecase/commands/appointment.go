package commands

import (
	"context"
	"errors"
	"log/slog"

	"pupperazi-api/internal/domain/appointment"
	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/clock"
	"pupperazi-api/internal/pkg/errs"
	"pupperazi-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrInvalidStatusChange = errs.New("invalid status change")
	ErrDomainValidation    = errs.New("domain validation error")
)

type CustomerRepository interface {
	// UpsertByEmail reuses an existing customer record matched by email or
	// creates a new one.
	UpsertByEmail(ctx context.Context, tx pgx.Tx, name, email, phone string) (uuid.UUID, error)
	CreatePet(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, name, breed string) (uuid.UUID, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error
	FindForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateAppointmentResult struct {
	Appointment *queries.AppointmentView
}

type AppointmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*CreateAppointmentResult, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	appointmentQs   queries.AppointmentQueries
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewAppointmentCommands(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	appointmentQs queries.AppointmentQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		appointmentQs:   appointmentQs,
		db:              db,
		clock:           clock,
	}
}

func (a *appointmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*CreateAppointmentResult, error) {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	customerID, err := a.customerRepo.UpsertByEmail(ctx, tx, req.CustomerName, req.Email, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	petID, err := a.customerRepo.CreatePet(ctx, tx, customerID, req.PetName, req.PetBreed)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	appt, err := appointment.NewAppointment(a.clock, customerID, petID, req.ServiceIDs, req.StartTime, req.GetNotes())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.appointmentRepo.Create(ctx, tx, appt); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := a.appointmentQs.GetAppointment(ctx, appt.ID())
	if err != nil {
		return nil, err
	}
	return &CreateAppointmentResult{Appointment: view}, nil
}

func (a *appointmentCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.AppointmentView, error) {
	next, err := appointment.NewStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusChange
	}

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	appt, err := a.appointmentRepo.FindForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := appt.ChangeStatus(a.clock, next); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusChange)
	}

	if err := a.appointmentRepo.UpdateStatus(ctx, tx, appt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.appointmentQs.GetAppointment(ctx, id)
}

func (a *appointmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := a.appointmentRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
