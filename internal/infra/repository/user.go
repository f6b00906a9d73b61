package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/infra"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE admin_users SET last_login = now() WHERE id = $1
	`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
