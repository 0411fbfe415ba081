package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/jwt"
	"cabdin/internal/lib/logger/handlers/slogdiscard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	args := m.Called(ctx, userID, token, exp)
	return args.Error(0)
}

func (m *MockTokenRepository) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllUserTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testSecret = "token-test-secret"

var (
	testAdmin = models.Admin{
		ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Email: "test@cabdin.id",
		Role:  models.RoleAdmin,
	}
	testCtx = context.Background()
)

func newService(repo *MockTokenRepository) *TokenService {
	return NewTokenService(slogdiscard.NewDiscardLogger(), repo, testSecret, 15*time.Minute, time.Hour)
}

func TestGenerateTokens_Success(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newService(repo)

	repo.On("SaveRefreshToken", testCtx, testAdmin.ID.String(), mock.Anything, time.Hour).
		Return(nil)

	tokens, err := service.GenerateTokens(testCtx, testAdmin)

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	claims, err := jwt.Parse(testSecret, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	repo.AssertExpectations(t)
}

func TestGenerateTokens_RepoError(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newService(repo)

	expectedErr := errors.New("storage error")
	repo.On("SaveRefreshToken", testCtx, testAdmin.ID.String(), mock.Anything, mock.Anything).
		Return(expectedErr)

	tokens, err := service.GenerateTokens(testCtx, testAdmin)

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, tokens)
	repo.AssertExpectations(t)
}

func TestRefreshTokens_Success(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newService(repo)

	refreshToken, err := jwt.NewToken(testSecret, testAdmin, jwt.RefreshToken, time.Hour)
	require.NoError(t, err)

	repo.On("GetRefreshToken", testCtx, testAdmin.ID.String(), refreshToken).Return(true, nil)
	repo.On("DeleteRefreshToken", testCtx, testAdmin.ID.String(), refreshToken).Return(nil)
	repo.On("SaveRefreshToken", testCtx, testAdmin.ID.String(), mock.Anything, mock.Anything).Return(nil)

	newTokens, err := service.RefreshTokens(testCtx, refreshToken)

	require.NoError(t, err)
	assert.NotEqual(t, refreshToken, newTokens.RefreshToken)
	repo.AssertExpectations(t)
}

func TestRefreshTokens_Rejected(t *testing.T) {
	access, _ := jwt.NewToken(testSecret, testAdmin, jwt.AccessToken, time.Hour)
	expired, _ := jwt.NewToken(testSecret, testAdmin, jwt.RefreshToken, -time.Hour)
	foreign, _ := jwt.NewToken("other-secret", testAdmin, jwt.RefreshToken, time.Hour)
	valid, _ := jwt.NewToken(testSecret, testAdmin, jwt.RefreshToken, time.Hour)

	tests := []struct {
		name      string
		token     string
		mockSetup func(repo *MockTokenRepository)
		wantKind  apperr.Kind
	}{
		{name: "garbage", token: "invalid.token.string", mockSetup: func(*MockTokenRepository) {}, wantKind: apperr.KindUnauthorized},
		{name: "access token", token: access, mockSetup: func(*MockTokenRepository) {}, wantKind: apperr.KindUnauthorized},
		{name: "expired", token: expired, mockSetup: func(*MockTokenRepository) {}, wantKind: apperr.KindUnauthorized},
		{name: "wrong signature", token: foreign, mockSetup: func(*MockTokenRepository) {}, wantKind: apperr.KindUnauthorized},
		{
			name:  "not in storage",
			token: valid,
			mockSetup: func(repo *MockTokenRepository) {
				repo.On("GetRefreshToken", testCtx, testAdmin.ID.String(), valid).Return(false, nil)
			},
			wantKind: apperr.KindUnauthorized,
		},
		{
			name:  "storage error",
			token: valid,
			mockSetup: func(repo *MockTokenRepository) {
				repo.On("GetRefreshToken", testCtx, testAdmin.ID.String(), valid).Return(false, errors.New("redis down"))
			},
			wantKind: apperr.KindInternal,
		},
		{
			name:  "delete error",
			token: valid,
			mockSetup: func(repo *MockTokenRepository) {
				repo.On("GetRefreshToken", testCtx, testAdmin.ID.String(), valid).Return(true, nil)
				repo.On("DeleteRefreshToken", testCtx, testAdmin.ID.String(), valid).Return(errors.New("delete error"))
			},
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTokenRepository)
			tt.mockSetup(repo)

			_, err := newService(repo).RefreshTokens(testCtx, tt.token)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			repo.AssertExpectations(t)
		})
	}
}

func TestRefreshTokens_AccessTokenType(t *testing.T) {
	access, err := jwt.NewToken(testSecret, testAdmin, jwt.AccessToken, time.Hour)
	require.NoError(t, err)

	repo := new(MockTokenRepository)

	require.NotPanics(t, func() {
		_, err = newService(repo).RefreshTokens(testCtx, access)
	})

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	repo.AssertNotCalled(t, "GetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestRevokeAll(t *testing.T) {
	repo := new(MockTokenRepository)
	repo.On("DeleteAllUserTokens", testCtx, testAdmin.ID.String()).Return(nil).Once()

	require.NoError(t, newService(repo).RevokeAll(testCtx, testAdmin))
	repo.AssertExpectations(t)
}
