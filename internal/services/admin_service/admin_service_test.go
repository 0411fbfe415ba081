package services

import (
	"context"
	"errors"
	"testing"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/handlers/slogdiscard"
	"cabdin/internal/storage"

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

func TestAdminService_Filter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		filter    models.AdminFilter
		mockSetup func(repo *MockAdminRepository)
		wantKind  *apperr.Kind
	}{
		{
			name:   "valid filter passes through",
			filter: models.AdminFilter{Role: models.RoleAdmin, Status: models.StatusPending, Email: " cabdin "},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("ListAdmins", ctx, models.AdminFilter{Role: models.RoleAdmin, Status: models.StatusPending, Email: "cabdin"}).
					Return([]models.Admin{{Email: "a@cabdin.id"}}, nil).Once()
			},
		},
		{
			name:      "unknown role",
			filter:    models.AdminFilter{Role: "Owner"},
			mockSetup: func(repo *MockAdminRepository) {},
			wantKind:  kindPtr(apperr.KindBadRequest),
		},
		{
			name:      "unknown status",
			filter:    models.AdminFilter{Status: "Maybe"},
			mockSetup: func(repo *MockAdminRepository) {},
			wantKind:  kindPtr(apperr.KindBadRequest),
		},
		{
			name: "repository error",
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("ListAdmins", ctx, models.AdminFilter{}).Return(nil, errors.New("db error")).Once()
			},
			wantKind: kindPtr(apperr.KindInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tt.mockSetup(repo)

			_, err := NewAdminService(slogdiscard.NewDiscardLogger(), repo).Filter(ctx, tt.filter)

			if tt.wantKind != nil {
				assert.Equal(t, *tt.wantKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAdminService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("lama12345"), bcrypt.MinCost)
	require.NoError(t, err)
	target := models.Admin{ID: id, Email: "a@cabdin.id", PasswordHash: hash, Role: models.RoleAdmin, Status: models.StatusPending}

	tests := []struct {
		name      string
		input     UpdateInput
		mockSetup func(repo *MockAdminRepository)
		wantKind  *apperr.Kind
	}{
		{
			name:  "approve",
			input: UpdateInput{Status: models.StatusApproved},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(target, nil).Twice()
				repo.On("UpdateAdminFields", ctx, id, map[string]interface{}{"status_approval": "Approved"}).Return(nil).Once()
			},
		},
		{
			name:  "password change",
			input: UpdateInput{NewPassword: "baru12345", OldPassword: "lama12345"},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(target, nil).Twice()
				repo.On("UpdateAdminFields", ctx, id, mock.MatchedBy(func(u map[string]interface{}) bool {
					h, ok := u["password_hash"].([]byte)
					return ok && len(u) == 1 && bcrypt.CompareHashAndPassword(h, []byte("baru12345")) == nil
				})).Return(nil).Once()
			},
		},
		{
			name:  "password change without old password",
			input: UpdateInput{NewPassword: "baru12345"},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(target, nil).Once()
			},
			wantKind: kindPtr(apperr.KindBadRequest),
		},
		{
			name:  "wrong old password",
			input: UpdateInput{NewPassword: "baru12345", OldPassword: "salah"},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(target, nil).Once()
			},
			wantKind: kindPtr(apperr.KindForbidden),
		},
		{
			name:  "nothing to update",
			input: UpdateInput{},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(target, nil).Once()
			},
			wantKind: kindPtr(apperr.KindBadRequest),
		},
		{
			name:  "missing admin",
			input: UpdateInput{Status: models.StatusApproved},
			mockSetup: func(repo *MockAdminRepository) {
				repo.On("GetAdminByID", ctx, id).Return(models.Admin{}, storage.ErrNotFound).Once()
			},
			wantKind: kindPtr(apperr.KindNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tt.mockSetup(repo)

			_, err := NewAdminService(slogdiscard.NewDiscardLogger(), repo).Update(ctx, id, tt.input)

			if tt.wantKind != nil {
				assert.Equal(t, *tt.wantKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAdminService_Delete(t *testing.T) {
	ctx := context.Background()
	actor, id := uuid.New(), uuid.New()

	t.Run("cannot delete self", func(t *testing.T) {
		repo := new(MockAdminRepository)
		_, err := NewAdminService(slogdiscard.NewDiscardLogger(), repo).Delete(ctx, actor, actor)
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
		repo.AssertNotCalled(t, "DeleteAdmin", mock.Anything, mock.Anything)
	})

	t.Run("deletes another admin", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("GetAdminByID", ctx, id).Return(models.Admin{ID: id}, nil).Once()
		repo.On("DeleteAdmin", ctx, id).Return(nil).Once()

		got, err := NewAdminService(slogdiscard.NewDiscardLogger(), repo).Delete(ctx, actor, id)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		repo.AssertExpectations(t)
	})
}

func kindPtr(k apperr.Kind) *apperr.Kind { return &k }
