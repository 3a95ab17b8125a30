package demographics

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for demographics records.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Profile, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Profile, int, error)
}
