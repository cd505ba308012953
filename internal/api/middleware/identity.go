package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

// Identity resolves the request principal from the Authorization header
// and threads it through the request context.
//
// Resolution never fails the request: a missing header, malformed value,
// invalid or expired token, or a user record that no longer exists all
// yield an anonymous principal. Protected operations enforce their own
// requirements downstream.
func Identity(tokens *auth.TokenIssuer, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := auth.Anonymous()

			if raw, ok := bearerToken(c.Request().Header.Get("Authorization")); ok {
				if claims, err := tokens.VerifyAccess(raw); err != nil {
					log.Debug().Msg("identity: token rejected")
				} else {
					// Claims are a snapshot taken at issuance; reload the
					// current record by primary key.
					user, err := users.FindByID(c.Request().Context(), claims.UserID)
					if err != nil {
						log.Debug().Err(err).Str("user_id", claims.UserID).Msg("identity: user lookup failed")
					} else {
						principal = auth.Authenticated(user)
					}
				}
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), principal)))
			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header. The
// prefix match is deliberately the literal "Bearer ": clients send the
// canonical casing and anything else is treated as absent.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
