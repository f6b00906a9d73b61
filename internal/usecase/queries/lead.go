package queries

import (
	"context"
	"time"

	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errs.New("lead not found")

// LeadView is the read model for one captured inquiry.
type LeadView struct {
	ID                uuid.UUID
	NameAndPhone      string
	Email             string
	NewCustomer       string
	PetsNameAndBreed  string
	DateTimeRequested *string
	Message           string
	CreatedAt         time.Time
}

type LeadReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeadView, error)
	ListRecent(ctx context.Context, limit int32) ([]*LeadView, error)
}

type LeadQueries interface {
	GetLead(ctx context.Context, id uuid.UUID) (*LeadView, error)
	ListLeads(ctx context.Context, limit int32) ([]*LeadView, error)
}

type leadQueriesImpl struct {
	readStore LeadReadStore
}

func NewLeadQueries(readStore LeadReadStore) LeadQueries {
	return &leadQueriesImpl{readStore: readStore}
}

func (q *leadQueriesImpl) GetLead(ctx context.Context, id uuid.UUID) (*LeadView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return view, nil
}

const defaultLeadListLimit = 100

func (q *leadQueriesImpl) ListLeads(ctx context.Context, limit int32) ([]*LeadView, error) {
	if limit <= 0 || limit > defaultLeadListLimit {
		limit = defaultLeadListLimit
	}
	return q.readStore.ListRecent(ctx, limit)
}
