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

type LeadReadStore struct {
	pool *pgxpool.Pool
}

func NewLeadReadStore(pool *pgxpool.Pool) *LeadReadStore {
	return &LeadReadStore{pool: pool}
}

const leadColumns = `id, name_and_phone, email, new_customer, pets_name_and_breed, date_time_requested, message, created_at`

func (r *LeadReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeadView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE id = $1
	`, id)
	view, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead", err)
	}
	return view, nil
}

func (r *LeadReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.LeadView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leads", err)
	}
	defer rows.Close()

	var views []*queries.LeadView
	for rows.Next() {
		view, err := scanLead(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lead", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate leads", err)
	}
	return views, nil
}

func scanLead(row pgx.Row) (*queries.LeadView, error) {
	var (
		view          queries.LeadView
		dateRequested pgtype.Text
	)
	err := row.Scan(
		&view.ID,
		&view.NameAndPhone,
		&view.Email,
		&view.NewCustomer,
		&view.PetsNameAndBreed,
		&dateRequested,
		&view.Message,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.DateTimeRequested = pgconv.StringPtrFromPgtype(dateRequested)
	return &view, nil
}
