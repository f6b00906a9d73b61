package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/usecase/queries"
)

type ServiceReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceReadStore(pool *pgxpool.Pool) *ServiceReadStore {
	return &ServiceReadStore{pool: pool}
}

func (r *ServiceReadStore) ListActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price_cents, duration_min, active
		FROM services
		WHERE active
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.PriceCents, &view.DurationMin, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}
