package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/pgconv"
	"pupperazi-api/internal/usecase/queries"
)

type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

const appointmentSelect = `
	SELECT a.id, a.customer_id, c.name, c.email, c.phone,
		a.pet_id, p.name, p.breed,
		a.start_time, a.status, a.notes, a.created_at, a.updated_at
	FROM appointments a
	JOIN customers c ON c.id = a.customer_id
	JOIN pets p ON p.id = a.pet_id
`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.pool.QueryRow(ctx, appointmentSelect+`
		WHERE a.id = $1
	`, id)
	view, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	if err := r.attachServices(ctx, []*queries.AppointmentView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *AppointmentReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := r.pool.Query(ctx, appointmentSelect+`
		ORDER BY a.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}

	if err := r.attachServices(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func scanAppointment(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view  queries.AppointmentView
		notes pgtype.Text
	)
	err := row.Scan(
		&view.ID,
		&view.CustomerID,
		&view.CustomerName,
		&view.CustomerEmail,
		&view.CustomerPhone,
		&view.PetID,
		&view.PetName,
		&view.PetBreed,
		&view.StartTime,
		&view.Status,
		&notes,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	return &view, nil
}

// attachServices loads the service lines for a batch of appointments in one
// round trip.
func (r *AppointmentReadStore) attachServices(ctx context.Context, views []*queries.AppointmentView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.AppointmentView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.pool.Query(ctx, `
		SELECT aps.appointment_id, s.id, s.name, s.price_cents
		FROM appointment_services aps
		JOIN services s ON s.id = aps.service_id
		WHERE aps.appointment_id = ANY($1)
		ORDER BY s.name
	`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load service lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			apptID uuid.UUID
			line   queries.ServiceLine
		)
		if err := rows.Scan(&apptID, &line.ID, &line.Name, &line.PriceCents); err != nil {
			return infra.WrapRepoErr("failed to scan service line", err)
		}
		if view, ok := byID[apptID]; ok {
			view.Services = append(view.Services, line)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate service lines", err)
	}
	return nil
}
