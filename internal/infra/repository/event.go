package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/domain/analytics"
	"pupperazi-api/internal/infra"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, ev analytics.Event) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (kind, visitor_id, page, occurred_at)
		VALUES ($1, $2, NULLIF($3, ''), $4)
	`, string(ev.Kind), ev.VisitorID, ev.Page, ev.OccurredAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert event", err, classify(err))
	}
	return nil
}
