package services

import (
	"context"
	"errors"
	"testing"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/handlers/slogdiscard"
	"cabdin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFooterRepository struct {
	mock.Mock
}

func (m *MockFooterRepository) ListFooters(ctx context.Context) ([]models.Footer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Footer), args.Error(1)
}

func (m *MockFooterRepository) GetFooter(ctx context.Context, id int64) (models.Footer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Footer), args.Error(1)
}

func (m *MockFooterRepository) UpdateFooterFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func TestFooterService_Update(t *testing.T) {
	ctx := context.Background()
	stored := models.Footer{ID: 1, Email: "cabdin@jatimprov.go.id", Phone: "0342", Address: "Blitar"}

	tests := []struct {
		name      string
		in        UpdateInput
		mockSetup func(*MockFooterRepository)
		wantErr   bool
		wantKind  apperr.Kind
	}{
		{
			name: "ignores empty fields",
			in:   UpdateInput{Email: " cabdin@jatimprov.go.id ", Phone: "", Address: "  "},
			mockSetup: func(r *MockFooterRepository) {
				r.On("UpdateFooterFields", ctx, int64(1), map[string]interface{}{"email": "cabdin@jatimprov.go.id"}).Return(nil)
				r.On("GetFooter", ctx, int64(1)).Return(stored, nil)
			},
		},
		{
			name:      "nothing valid",
			in:        UpdateInput{Phone: " "},
			mockSetup: func(r *MockFooterRepository) {},
			wantErr:   true,
			wantKind:  apperr.KindBadRequest,
		},
		{
			name: "missing row",
			in:   UpdateInput{Phone: "0342"},
			mockSetup: func(r *MockFooterRepository) {
				r.On("UpdateFooterFields", ctx, int64(1), mock.Anything).Return(storage.ErrNotFound)
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name: "database error",
			in:   UpdateInput{Phone: "0342"},
			mockSetup: func(r *MockFooterRepository) {
				r.On("UpdateFooterFields", ctx, int64(1), mock.Anything).Return(errors.New("conn reset"))
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockFooterRepository)
			tt.mockSetup(repo)

			got, err := NewFooterService(slogdiscard.NewDiscardLogger(), repo).Update(ctx, 1, tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestFooterService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFooterRepository)
	repo.On("GetFooter", ctx, int64(9)).Return(models.Footer{}, storage.ErrNotFound)

	_, err := NewFooterService(slogdiscard.NewDiscardLogger(), repo).Get(ctx, 9)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "footer 9 tidak ditemukan", apperr.Message(err))
}
