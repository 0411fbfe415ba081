package middleware

import (
	"context"
	"net/http"

	"cabdin/internal/lib/apperr"
	jwtlib "cabdin/internal/lib/jwt"
	"cabdin/internal/transport/http/dto/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	SessionName   = "session"
	SessionUserID = "user_id"

	tokenContextKey  = "user"
	userIDContextKey = "auth_user_id"
)

// Gate re-checks the caller's admin row on every call.
type Gate interface {
	RequireApproved(ctx context.Context, userID uuid.UUID) error
	RequireApprovedSuperadmin(ctx context.Context, userID uuid.UUID) error
}

// BearerToken parses an optional "Authorization: Bearer" header. A missing or
// invalid token does not stop the request; Identity decides what counts.
func BearerToken(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:             []byte(secret),
		ContextKey:             tokenContextKey,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// Identity resolves the caller from a valid access token, falling back to the
// cookie session set at login.
func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id, ok := identityFromToken(c); ok {
			c.Set(userIDContextKey, id)
			return next(c)
		}

		if id, ok := identityFromSession(c); ok {
			c.Set(userIDContextKey, id)
		}

		return next(c)
	}
}

func identityFromToken(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		return uuid.Nil, false
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}

	claims, err := jwtlib.FromMapClaims(mc)
	if err != nil || claims.Type != jwtlib.AccessToken {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

func identityFromSession(c echo.Context) (uuid.UUID, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := sess.Values[SessionUserID].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// UserID returns the caller resolved by Identity.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDContextKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserID(c); !ok {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationRequired)
		}
		return next(c)
	}
}

// RequireApproved admits any approved admin.
func RequireApproved(gate Gate) echo.MiddlewareFunc {
	return requireGate(func(ctx context.Context, id uuid.UUID) error {
		return gate.RequireApproved(ctx, id)
	})
}

// RequireSuperadmin admits only approved superadmins.
func RequireSuperadmin(gate Gate) echo.MiddlewareFunc {
	return requireGate(func(ctx context.Context, id uuid.UUID) error {
		return gate.RequireApprovedSuperadmin(ctx, id)
	})
}

func requireGate(check func(ctx context.Context, id uuid.UUID) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			id, _ := UserID(c)

			if err := check(c.Request().Context(), id); err != nil {
				status := http.StatusInternalServerError
				switch apperr.KindOf(err) {
				case apperr.KindForbidden:
					status = http.StatusForbidden
				case apperr.KindUnauthorized:
					status = http.StatusUnauthorized
				}

				return c.JSON(status, response.ErrorResponseWithDetails(apperr.KindOf(err).String(), apperr.Message(err)))
			}

			return next(c)
		})
	}
}
