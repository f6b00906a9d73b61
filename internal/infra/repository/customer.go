package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pupperazi-api/internal/infra"
)

// CustomerRepository writes customer and pet rows inside the booking
// transaction. Both methods take the caller's tx so a failed booking leaves
// no orphan records.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) UpsertByEmail(ctx context.Context, tx pgx.Tx, name, email, phone string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			updated_at = now()
		RETURNING id
	`, name, email, phone).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err, classify(err))
	}
	return id, nil
}

func (r *CustomerRepository) CreatePet(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, name, breed string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO pets (customer_id, name, breed)
		VALUES ($1, $2, $3)
		RETURNING id
	`, customerID, name, breed).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pet", err, classify(err))
	}
	return id, nil
}
