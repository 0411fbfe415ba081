package jwt

import (
	"testing"
	"time"

	"cabdin/internal/domain/models"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func testAdmin() models.Admin {
	return models.Admin{
		ID:    uuid.New(),
		Email: "admin@cabdin.id",
		Role:  models.RoleSuperadmin,
	}
}

func TestNewTokenAndParse(t *testing.T) {
	admin := testAdmin()

	token, err := NewToken(secret, admin, AccessToken, time.Minute)
	require.NoError(t, err)

	claims, err := Parse(secret, token)
	require.NoError(t, err)

	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, admin.Email, claims.Email)
	assert.Equal(t, models.RoleSuperadmin, claims.Role)
	assert.Equal(t, AccessToken, claims.Type)
}

func TestNewToken_Distinct(t *testing.T) {
	admin := testAdmin()

	a, err := NewToken(secret, admin, RefreshToken, time.Hour)
	require.NoError(t, err)
	b, err := NewToken(secret, admin, RefreshToken, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestParse_Errors(t *testing.T) {
	admin := testAdmin()

	expired, err := NewToken(secret, admin, AccessToken, -time.Minute)
	require.NoError(t, err)

	valid, err := NewToken(secret, admin, AccessToken, time.Minute)
	require.NoError(t, err)

	noneAlg := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": admin.ID.String()})
	unsigned, err := noneAlg.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{name: "expired", secret: secret, token: expired, wantErr: ErrTokenExpired},
		{name: "wrong secret", secret: "other", token: valid, wantErr: ErrInvalidToken},
		{name: "garbage", secret: secret, token: "not-a-token", wantErr: ErrInvalidToken},
		{name: "alg none", secret: secret, token: unsigned, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.secret, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromMapClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  gojwt.MapClaims
		wantErr bool
	}{
		{name: "missing subject", claims: gojwt.MapClaims{"email": "a@b.c"}, wantErr: true},
		{name: "subject not uuid", claims: gojwt.MapClaims{"sub": "42"}, wantErr: true},
		{name: "ok", claims: gojwt.MapClaims{"sub": uuid.NewString(), "typ": "access"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMapClaims(tt.claims)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClaims)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
