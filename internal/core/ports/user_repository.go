package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)

	// ClaimAdminBootstrap atomically claims the one-time right to create
	// the first (admin) account. Exactly one caller across the lifetime of
	// the store observes true.
	ClaimAdminBootstrap(ctx context.Context) (bool, error)

	// ReleaseAdminBootstrap returns a won claim so the next registration
	// can take it. Called when the insert following a winning claim fails;
	// without the release no admin could ever be created.
	ReleaseAdminBootstrap(ctx context.Context) error
}
