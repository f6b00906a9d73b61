package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/ptr"
	"pupperazi-api/internal/usecase/queries"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.scanUser(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, last_login, created_at
		FROM admin_users
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view, hash, err := r.scanUser(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, last_login, created_at
		FROM admin_users
		WHERE email = $1
	`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, hash, nil
}

func (r *UserReadStore) scanUser(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		view      queries.AuthorizedUserView
		hash      string
		lastLogin pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Email, &hash, &view.Role, &view.IsActive, &lastLogin, &view.CreatedAt)
	if err != nil {
		return nil, "", err
	}
	view.LastLogin = ptr.TimeFromPgtype(lastLogin)
	return &view, hash, nil
}
