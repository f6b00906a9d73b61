package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/domain/analytics"
	"pupperazi-api/internal/infra"
)

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{pool: pool}
}

func (r *EventReadStore) EventsSince(ctx context.Context, since time.Time) ([]analytics.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, visitor_id, page, occurred_at
		FROM events
		WHERE occurred_at >= $1
		ORDER BY occurred_at
	`, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load events", err)
	}
	defer rows.Close()

	var events []analytics.Event
	for rows.Next() {
		var (
			ev   analytics.Event
			kind string
			page pgtype.Text
		)
		if err := rows.Scan(&kind, &ev.VisitorID, &page, &ev.OccurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		ev.Kind = analytics.EventKind(kind)
		ev.Page = page.String
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}
	return events, nil
}
