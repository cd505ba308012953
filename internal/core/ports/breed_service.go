package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// CreateBreedInput carries the fields for a new breed entry.
type CreateBreedInput struct {
	Name        string
	Group       string
	Section     string
	Provisional string
	Country     string
	URL         string
	Image       string
	PDF         string
}

type BreedService interface {
	Create(ctx context.Context, input CreateBreedInput) (*domain.DogBreed, error)
	Get(ctx context.Context, id string) (*domain.DogBreed, error)
	List(ctx context.Context) ([]domain.DogBreed, error)
}
