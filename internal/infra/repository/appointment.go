package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/domain/appointment"
	"pupperazi-api/internal/infra"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO appointments (id, customer_id, pet_id, start_time, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
	`, appt.ID(), appt.CustomerID(), appt.PetID(), appt.StartTime(),
		appt.Status().String(), appt.Notes(), appt.CreatedAt(), appt.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err, classify(err))
	}

	for _, serviceID := range appt.ServiceIDs() {
		_, err = tx.Exec(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id)
			VALUES ($1, $2)
		`, appt.ID(), serviceID)
		if err != nil {
			return infra.WrapRepoErr("failed to attach service", err, classify(err))
		}
	}
	return nil
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*appointment.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, customer_id, pet_id, start_time, status, COALESCE(notes, ''), created_at, updated_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, id)

	var (
		apptID, customerID, petID       uuid.UUID
		startTime, createdAt, updatedAt time.Time
		statusStr, notes                string
	)
	err := row.Scan(&apptID, &customerID, &petID, &startTime, &statusStr, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err, classify(err))
	}

	status, err := appointment.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment status", err)
	}

	serviceIDs, err := r.serviceIDs(ctx, tx, apptID)
	if err != nil {
		return nil, err
	}

	return appointment.Restore(apptID, customerID, petID, serviceIDs, startTime, status, notes, createdAt, updatedAt), nil
}

func (r *AppointmentRepository) serviceIDs(ctx context.Context, tx pgx.Tx, apptID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, `
		SELECT service_id FROM appointment_services WHERE appointment_id = $1
	`, apptID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment services", err, classify(err))
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment services", err)
	}
	return ids, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = $3
		WHERE id = $1
	`, appt.ID(), appt.Status().String(), appt.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM appointments WHERE id = $1
	`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
