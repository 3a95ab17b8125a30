package adl

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for ADL assessments.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Update(ctx context.Context, a *Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Assessment, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Assessment, int, error)
}
