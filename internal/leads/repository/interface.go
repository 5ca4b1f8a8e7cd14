package repository

import (
	"context"

	"github.com/google/uuid"
)

// LeadsRepository is the storage contract consumed by the service layer.
// The concrete implementation is *Repository; tests substitute fakes.
type LeadsRepository interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context, limit, offset int) ([]Lead, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateLeadParams) (Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Compile-time check that Repository satisfies the contract.
var _ LeadsRepository = (*Repository)(nil)
