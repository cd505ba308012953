package ports

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// CreateUserInput carries the registration fields. Role is honored only
// when the requester is an admin; everyone else gets the default.
type CreateUserInput struct {
	Email          string
	Password       string
	Username       string
	FullName       string
	Role           string
	ProfilePicture string
	Bio            string
	Country        string
}

// LoginResult is the token pair issued on successful authentication.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
