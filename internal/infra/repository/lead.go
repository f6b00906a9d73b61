package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pupperazi-api/internal/domain/lead"
	"pupperazi-api/internal/infra"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Create(ctx context.Context, sub lead.Submission) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (name_and_phone, email, new_customer, pets_name_and_breed, date_time_requested, message)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id
	`, sub.NameAndPhone(), sub.Email(), sub.NewCustomer(), sub.PetsNameAndBreed(),
		sub.DateTimeRequested(), sub.Message()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lead", err, classify(err))
	}
	return id, nil
}
