package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// BreedRepository defines the persistence interface for breed entries.
type BreedRepository interface {
	Create(ctx context.Context, breed *domain.DogBreed) (*domain.DogBreed, error)
	FindByID(ctx context.Context, id string) (*domain.DogBreed, error)
	FindAll(ctx context.Context) ([]domain.DogBreed, error)
}

// BreedCache is a read-through cache for the full breed listing. A miss is
// (nil, false, nil); cache failures are surfaced so callers can decide to
// fall through to the repository.
type BreedCache interface {
	GetList(ctx context.Context) ([]domain.DogBreed, bool, error)
	SetList(ctx context.Context, breeds []domain.DogBreed) error
	Invalidate(ctx context.Context) error
}
