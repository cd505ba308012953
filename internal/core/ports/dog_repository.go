package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// DogRepository defines the persistence interface for dog entries.
type DogRepository interface {
	Create(ctx context.Context, dog *domain.Dog) (*domain.Dog, error)
	FindByID(ctx context.Context, id string) (*domain.Dog, error)
	FindAll(ctx context.Context) ([]domain.Dog, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error)
	FindByBreed(ctx context.Context, breedID string) ([]domain.Dog, error)

	// Delete removes the entry with the given id and reports whether a
	// record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
