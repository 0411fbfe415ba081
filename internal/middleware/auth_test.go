package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	jwtlib "cabdin/internal/lib/jwt"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

type MockGate struct {
	mock.Mock
}

func (m *MockGate) RequireApproved(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockGate) RequireApprovedSuperadmin(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestEcho(gate Gate) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("session-secret"))))
	e.Use(BearerToken(testSecret))
	e.Use(Identity)

	e.GET("/whoami", func(c echo.Context) error {
		id, ok := UserID(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, id.String())
	})
	e.GET("/session/:id", func(c echo.Context) error {
		sess, _ := session.Get(SessionName, c)
		sess.Values[SessionUserID] = c.Param("id")
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/private", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireAuth)
	e.GET("/super", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireSuperadmin(gate))

	return e
}

func bearer(t *testing.T, id uuid.UUID, typ jwtlib.TokenType) string {
	t.Helper()
	token, err := jwtlib.NewToken(testSecret, models.Admin{ID: id, Email: "a@cabdin.id", Role: models.RoleAdmin}, typ, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestIdentity(t *testing.T) {
	id := uuid.New()
	e := newTestEcho(new(MockGate))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "access token", header: bearer(t, id, jwtlib.AccessToken), want: id.String()},
		{name: "refresh token is not an identity", header: bearer(t, id, jwtlib.RefreshToken), want: "anonymous"},
		{name: "garbage token", header: "Bearer nope", want: "anonymous"},
		{name: "no header", want: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestIdentity_SessionFallback(t *testing.T) {
	id := uuid.New()
	e := newTestEcho(new(MockGate))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session/"+id.String(), nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, id.String(), rec.Body.String())
}

func TestRequireAuth(t *testing.T) {
	e := newTestEcho(new(MockGate))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, uuid.New(), jwtlib.AccessToken))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSuperadmin(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(g *MockGate)
		want      int
	}{
		{
			name: "approved superadmin",
			mockSetup: func(g *MockGate) {
				g.On("RequireApprovedSuperadmin", mock.Anything, id).Return(nil)
			},
			want: http.StatusOK,
		},
		{
			name: "forbidden",
			mockSetup: func(g *MockGate) {
				g.On("RequireApprovedSuperadmin", mock.Anything, id).Return(apperr.Forbidden("superadmin approval required"))
			},
			want: http.StatusForbidden,
		},
		{
			name: "lookup failure",
			mockSetup: func(g *MockGate) {
				g.On("RequireApprovedSuperadmin", mock.Anything, id).Return(apperr.Internal("lookup admin", assert.AnError))
			},
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := new(MockGate)
			tt.mockSetup(gate)
			e := newTestEcho(gate)

			req := httptest.NewRequest(http.MethodGet, "/super", nil)
			req.Header.Set(echo.HeaderAuthorization, bearer(t, id, jwtlib.AccessToken))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			gate.AssertExpectations(t)
		})
	}
}
