package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/domain"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

// DogService implements dog entry CRUD. Creation requires any
// authenticated principal; deletion requires an admin.
type DogService struct {
	repo   ports.DogRepository
	breeds ports.BreedRepository
	logger zerolog.Logger
}

func NewDogService(repo ports.DogRepository, breeds ports.BreedRepository, logger zerolog.Logger) *DogService {
	return &DogService{repo: repo, breeds: breeds, logger: logger}
}

// Create persists a new dog entry owned by the authenticated principal.
func (s *DogService) Create(ctx context.Context, input ports.CreateDogInput) (*domain.Dog, error) {
	owner, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.URL == "" || input.BreedID == "" {
		return nil, domain.ErrBadUserInput
	}

	// A dog must reference an existing breed.
	if _, err := s.breeds.FindByID(ctx, input.BreedID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dog := &domain.Dog{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Image:       input.Image,
		OwnerID:     owner.ID,
		BreedID:     input.BreedID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dog)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", owner.ID).Msg("failed to create dog")
		return nil, err
	}

	s.logger.Info().Str("dog_id", created.ID).Str("owner_id", owner.ID).Msg("dog created")
	return created, nil
}

// Delete removes a dog entry. Admin only; reports whether a record was
// actually removed.
func (s *DogService) Delete(ctx context.Context, id string) (bool, error) {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return false, err
	}
	if id == "" {
		return false, domain.ErrBadUserInput
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("dog_id", id).Msg("failed to delete dog")
		return false, err
	}

	s.logger.Info().Str("dog_id", id).Str("admin_id", admin.ID).Bool("deleted", deleted).Msg("dog deletion")
	return deleted, nil
}

func (s *DogService) List(ctx context.Context) ([]domain.Dog, error) {
	return s.repo.FindAll(ctx)
}

func (s *DogService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *DogService) ListByBreed(ctx context.Context, breedID string) ([]domain.Dog, error) {
	return s.repo.FindByBreed(ctx, breedID)
}
