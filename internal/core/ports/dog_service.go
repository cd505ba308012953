package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// CreateDogInput carries the fields for a new dog entry. The owner is
// stamped from the authenticated principal, never supplied by the caller.
type CreateDogInput struct {
	Name        string
	Description string
	URL         string
	Image       string
	BreedID     string
}

type DogService interface {
	Create(ctx context.Context, input CreateDogInput) (*domain.Dog, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Dog, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error)
	ListByBreed(ctx context.Context, breedID string) ([]domain.Dog, error)
}
