package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(context.Context) ([]domain.User, error) { return nil, nil }

func (r *stubUserRepo) Count(context.Context) (int64, error) { return 0, nil }

func (r *stubUserRepo) ClaimAdminBootstrap(context.Context) (bool, error) { return false, nil }

func (r *stubUserRepo) ReleaseAdminBootstrap(context.Context) error { return nil }

func resolvePrincipal(t *testing.T, authorization string, repo *stubUserRepo, tokens *auth.TokenIssuer) auth.Principal {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got auth.Principal
	mw := Identity(tokens, repo, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		got = auth.PrincipalFrom(c.Request().Context())
		return nil
	})(c)
	if err != nil {
		t.Fatalf("identity middleware must never fail the request, got %v", err)
	}
	return got
}

func TestIdentity_ValidToken(t *testing.T) {
	user := &domain.User{ID: "user_1", Email: "a@example.com", Username: "alice", Role: domain.RoleEditor}
	repo := &stubUserRepo{users: map[string]*domain.User{"user_1": user}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	token, err := tokens.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	p := resolvePrincipal(t, "Bearer "+token, repo, tokens)
	resolved, ok := p.User()
	if !ok {
		t.Fatalf("expected authenticated principal")
	}
	if resolved.ID != "user_1" {
		t.Fatalf("unexpected user: %+v", resolved)
	}
}

func TestIdentity_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	p := resolvePrincipal(t, "", repo, tokens)
	if _, ok := p.User(); ok {
		t.Fatalf("expected anonymous principal without header")
	}
}

func TestIdentity_BadPrefix(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	p := resolvePrincipal(t, "Basic abc123", repo, tokens)
	if _, ok := p.User(); ok {
		t.Fatalf("expected anonymous principal for non-bearer header")
	}
}

func TestIdentity_NonCanonicalBearerCasing(t *testing.T) {
	user := &domain.User{ID: "user_1", Role: domain.RoleEditor}
	repo := &stubUserRepo{users: map[string]*domain.User{"user_1": user}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	token, err := tokens.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, header := range []string{"bearer " + token, "BEARER " + token} {
		p := resolvePrincipal(t, header, repo, tokens)
		if _, ok := p.User(); ok {
			t.Fatalf("expected anonymous principal for %q prefix", header[:6])
		}
	}
}

func TestIdentity_InvalidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	p := resolvePrincipal(t, "Bearer not-a-token", repo, tokens)
	if _, ok := p.User(); ok {
		t.Fatalf("expected anonymous principal for invalid token")
	}
}

func TestIdentity_ExpiredToken(t *testing.T) {
	user := &domain.User{ID: "user_1", Role: domain.RoleEditor}
	repo := &stubUserRepo{users: map[string]*domain.User{"user_1": user}}
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Millisecond, time.Hour)

	token, err := tokens.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	p := resolvePrincipal(t, "Bearer "+token, repo, tokens)
	if _, ok := p.User(); ok {
		t.Fatalf("expected anonymous principal for expired token")
	}
}

func TestIdentity_DeletedUser(t *testing.T) {
	user := &domain.User{ID: "user_1", Role: domain.RoleEditor}
	repo := &stubUserRepo{users: map[string]*domain.User{}} // record gone
	tokens := auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, time.Hour)

	token, err := tokens.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	p := resolvePrincipal(t, "Bearer "+token, repo, tokens)
	if _, ok := p.User(); ok {
		t.Fatalf("expected anonymous principal when the record no longer exists")
	}
}
