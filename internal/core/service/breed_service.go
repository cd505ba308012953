package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/domain"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

// BreedService implements breed entry creation and reads. The full
// listing is served through a read-through cache; cache failures degrade
// to the repository and are logged, never surfaced.
type BreedService struct {
	repo   ports.BreedRepository
	cache  ports.BreedCache
	logger zerolog.Logger
}

func NewBreedService(repo ports.BreedRepository, cache ports.BreedCache, logger zerolog.Logger) *BreedService {
	return &BreedService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new breed entry. Admin only.
func (s *BreedService) Create(ctx context.Context, input ports.CreateBreedInput) (*domain.DogBreed, error) {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Group == "" || input.Section == "" || input.Country == "" || input.URL == "" {
		return nil, domain.ErrBadUserInput
	}

	now := time.Now().UTC()
	breed := &domain.DogBreed{
		Name:        input.Name,
		Group:       input.Group,
		Section:     input.Section,
		Provisional: input.Provisional,
		Country:     input.Country,
		URL:         input.URL,
		Image:       input.Image,
		PDF:         input.PDF,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, breed)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create breed")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("breed cache invalidation failed")
		}
	}

	s.logger.Info().Str("breed_id", created.ID).Str("admin_id", admin.ID).Msg("breed created")
	return created, nil
}

func (s *BreedService) Get(ctx context.Context, id string) (*domain.DogBreed, error) {
	if id == "" {
		return nil, domain.ErrBadUserInput
	}
	return s.repo.FindByID(ctx, id)
}

// List returns all breeds, preferring the cache when warm.
func (s *BreedService) List(ctx context.Context) ([]domain.DogBreed, error) {
	if s.cache != nil {
		breeds, hit, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("breed cache read failed")
		} else if hit {
			return breeds, nil
		}
	}

	breeds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, breeds); err != nil {
			s.logger.Warn().Err(err).Msg("breed cache write failed")
		}
	}
	return breeds, nil
}
