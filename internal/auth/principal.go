package auth

import (
	"context"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

// Principal is the identity resolved for a request: Authenticated carries
// the freshly loaded user record, Anonymous carries nothing. Resolution
// failures (missing header, bad token, deleted user) always yield
// Anonymous; the gates below decide whether that is acceptable.
type Principal struct {
	user *domain.User
}

// Anonymous returns the principal of an unauthenticated request.
func Anonymous() Principal {
	return Principal{}
}

// Authenticated returns a principal bound to user.
func Authenticated(user *domain.User) Principal {
	return Principal{user: user}
}

// User returns the bound user record and whether the principal is
// authenticated.
func (p Principal) User() (*domain.User, bool) {
	return p.user, p.user != nil
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the request principal; a context without one
// resolves to Anonymous.
func PrincipalFrom(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalKey{}).(Principal); ok {
		return p
	}
	return Anonymous()
}

// RequireUser returns the authenticated user or domain.ErrUnauthorized.
func RequireUser(ctx context.Context) (*domain.User, error) {
	user, ok := PrincipalFrom(ctx).User()
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// RequireAdmin returns the authenticated user when it holds RoleAdmin,
// domain.ErrUnauthorized otherwise.
func RequireAdmin(ctx context.Context) (*domain.User, error) {
	user, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
