package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/domain"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

// UserService implements registration, login, and user queries.
type UserService struct {
	repo   ports.UserRepository
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens *auth.TokenIssuer, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

// Create registers a new account. The very first account ever created is
// promoted to ADMIN via an atomic bootstrap claim; later accounts default
// to EDITOR. A caller-supplied role is honored only when the requester is
// already an admin.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Username == "" || input.FullName == "" {
		return nil, domain.ErrBadUserInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role, claimed, err := s.resolveRole(ctx, input.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		FullName:       input.FullName,
		Role:           role,
		ProfilePicture: input.ProfilePicture,
		Bio:            input.Bio,
		Country:        input.Country,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// A won claim must not outlive a failed insert, otherwise no
		// admin account could ever be created.
		if claimed {
			if relErr := s.repo.ReleaseAdminBootstrap(ctx); relErr != nil {
				s.logger.Error().Err(relErr).Msg("failed to release admin bootstrap claim")
			}
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// resolveRole decides the role for a new account. Winning the bootstrap
// claim always yields ADMIN regardless of input; claimed reports a win so
// the caller can release it if the subsequent insert fails.
func (s *UserService) resolveRole(ctx context.Context, requested string) (role domain.Role, claimed bool, err error) {
	first, err := s.repo.ClaimAdminBootstrap(ctx)
	if err != nil {
		return "", false, err
	}
	if first {
		return domain.RoleAdmin, true, nil
	}

	role = domain.Role(requested)
	if role == "" || !role.Valid() {
		return domain.RoleEditor, false, nil
	}
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return domain.RoleEditor, false, nil
	}
	return role, false, nil
}

// Login authenticates by email and password and issues the token pair.
// A wrong password is reported as bad input, not as a missing user.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrBadUserInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Info().Str("email", email).Msg("login rejected: wrong credentials")
		return nil, domain.ErrBadUserInput
	}

	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrBadUserInput
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
