package graph

import (
	"context"
	"net/http"
	"time"
)

// CookieWriter is the response-channel handle carried in the request
// context; the login mutation is its only consumer.
type CookieWriter interface {
	SetCookie(cookie *http.Cookie)
}

// AccessCookieName is the cookie that carries the access token.
const AccessCookieName = "access_token"

// CookieConfig controls the login cookie. MaxAge is kept aligned with the
// access-token lifetime so the cookie and the token expire together.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

type cookieWriterKey struct{}

// WithCookieWriter returns a context carrying the response-channel handle.
func WithCookieWriter(ctx context.Context, w CookieWriter) context.Context {
	return context.WithValue(ctx, cookieWriterKey{}, w)
}

func cookieWriterFrom(ctx context.Context) (CookieWriter, bool) {
	w, ok := ctx.Value(cookieWriterKey{}).(CookieWriter)
	return w, ok
}

func (c CookieConfig) accessCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     AccessCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
