package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/handlers/slogdiscard"
	"cabdin/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAdminRepository) GetAdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Admin), args.Error(1)
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context, filter models.AdminFilter) ([]models.Admin, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdateAdminFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) CountAdminsByRole(ctx context.Context) (map[models.Role]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[models.Role]int64), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateTokens(ctx context.Context, admin models.Admin) (*models.TokenPair, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) RevokeAll(ctx context.Context, admin models.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	tests := []struct {
		name      string
		password  string
		mockSetup func(repo *MockAdminRepository)
		wantKind  *apperr.Kind
	}{
		{
			name:     "pending admin is created",
			password: password,
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("SaveAdmin", ctx, mock.MatchedBy(func(a models.Admin) bool {
					return a.Email == strings.ToLower(email) &&
						a.Role == models.RoleAdmin &&
						a.Status == models.StatusPending &&
						bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil
				})).Return(uuid.New(), nil).Once()
			},
		},
		{
			name:     "duplicate email",
			password: password,
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("SaveAdmin", ctx, mock.Anything).Return(uuid.Nil, storage.ErrAlreadyExists).Once()
			},
			wantKind: kindPtr(apperr.KindConflict),
		},
		{
			name:      "password longer than bcrypt allows",
			password:  strings.Repeat("x", 100),
			mockSetup: func(repo *MockAdminRepository) {},
			wantKind:  kindPtr(apperr.KindBadRequest),
		},
		{
			name:     "repository error",
			password: password,
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("SaveAdmin", ctx, mock.Anything).Return(uuid.Nil, errors.New("db error")).Once()
			},
			wantKind: kindPtr(apperr.KindInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tt.mockSetup(repo)
			service := NewUserService(slogdiscard.NewDiscardLogger(), repo, new(MockTokenIssuer))

			id, err := service.Register(ctx, "  "+email+" ", tt.password)

			if tt.wantKind != nil {
				assert.Equal(t, *tt.wantKind, apperr.KindOf(err))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	email := "admin@cabdin.id"
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := func(status models.ApprovalStatus) models.Admin {
		return models.Admin{ID: uuid.New(), Email: email, PasswordHash: hash, Role: models.RoleAdmin, Status: status}
	}

	tests := []struct {
		name      string
		password  string
		mockSetup func(repo *MockAdminRepository, tokens *MockTokenIssuer)
		wantKind  *apperr.Kind
	}{
		{
			name:     "approved admin gets tokens",
			password: password,
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				a := admin(models.StatusApproved)
				repo.On("GetAdminByEmail", ctx, email).Return(a, nil).Once()
				tokens.On("GenerateTokens", ctx, a).Return(&models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil).Once()
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				repo.On("GetAdminByEmail", ctx, email).Return(admin(models.StatusApproved), nil).Once()
			},
			wantKind: kindPtr(apperr.KindUnauthorized),
		},
		{
			name:     "unknown email",
			password: password,
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				repo.On("GetAdminByEmail", ctx, email).Return(models.Admin{}, storage.ErrNotFound).Once()
			},
			wantKind: kindPtr(apperr.KindUnauthorized),
		},
		{
			name:     "pending account",
			password: password,
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				repo.On("GetAdminByEmail", ctx, email).Return(admin(models.StatusPending), nil).Once()
			},
			wantKind: kindPtr(apperr.KindForbidden),
		},
		{
			name:     "rejected account",
			password: password,
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				repo.On("GetAdminByEmail", ctx, email).Return(admin(models.StatusRejected), nil).Once()
			},
			wantKind: kindPtr(apperr.KindForbidden),
		},
		{
			name:     "token failure",
			password: password,
			mockSetup: func(repo *MockAdminRepository, tokens *MockTokenIssuer) {
				repo.On("GetAdminByEmail", ctx, email).Return(admin(models.StatusApproved), nil).Once()
				tokens.On("GenerateTokens", ctx, mock.Anything).Return(nil, errors.New("redis down")).Once()
			},
			wantKind: kindPtr(apperr.KindInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tokens := new(MockTokenIssuer)
			tt.mockSetup(repo, tokens)
			service := NewUserService(slogdiscard.NewDiscardLogger(), repo, tokens)

			pair, err := service.Login(ctx, email, tt.password)

			if tt.wantKind != nil {
				assert.Equal(t, *tt.wantKind, apperr.KindOf(err))
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "a", pair.AccessToken)
			}
			repo.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestUserService_LogoutAndProfile(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := new(MockAdminRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slogdiscard.NewDiscardLogger(), repo, tokens)

	tokens.On("RevokeAll", ctx, models.Admin{ID: id}).Return(nil).Once()
	require.NoError(t, service.Logout(ctx, id))

	repo.On("GetAdminByID", ctx, id).Return(models.Admin{}, storage.ErrNotFound).Once()
	_, err := service.Profile(ctx, id)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	tokens.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func kindPtr(k apperr.Kind) *apperr.Kind { return &k }
