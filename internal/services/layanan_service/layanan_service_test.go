package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/handlers/slogdiscard"
	"cabdin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// "%PDF-1.4" base64 encoded
const pdfURI = "data:application/pdf;base64,JVBERi0xLjQ="

type MockLayananRepository struct {
	mock.Mock
}

func (m *MockLayananRepository) SaveDocument(ctx context.Context, d models.ServiceDocument) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLayananRepository) GetDocument(ctx context.Context, id int64) (models.ServiceDocument, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ServiceDocument), args.Error(1)
}

func (m *MockLayananRepository) ListDocuments(ctx context.Context, filter models.ServiceFilter) ([]models.ServiceDocument, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceDocument), args.Error(1)
}

func (m *MockLayananRepository) UpdateDocumentFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockLayananRepository) DeleteDocument(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	return m.Called(ctx, bucket, name, data, contentType).Error(0)
}

func (m *MockBlobStore) Remove(ctx context.Context, bucket string, names ...string) error {
	return m.Called(ctx, bucket, names).Error(0)
}

func (m *MockBlobStore) PublicURL(bucket, name string) string {
	return "https://cdn.test/" + bucket + "/" + name
}

func newService(repo *MockLayananRepository, blobs *MockBlobStore) *LayananService {
	return NewLayananService(slogdiscard.NewDiscardLogger(), repo, blobs)
}

var pdfName = mock.MatchedBy(func(name string) bool {
	return strings.HasPrefix(name, "layanan-") && strings.HasSuffix(name, ".pdf")
})

func TestLayananService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		in        CreateInput
		mockSetup func(*MockLayananRepository, *MockBlobStore)
		wantErr   bool
		wantKind  apperr.Kind
	}{
		{
			name: "stores decoded size and mime",
			in:   CreateInput{Title: "Formulir", Kind: models.KindPensiun, FileName: "form.pdf", File: pdfURI},
			mockSetup: func(r *MockLayananRepository, b *MockBlobStore) {
				b.On("Upload", ctx, Bucket, pdfName, []byte("%PDF-1.4"), "application/pdf").Return(nil)
				r.On("SaveDocument", ctx, mock.MatchedBy(func(d models.ServiceDocument) bool {
					return d.FileSize == 8 && d.FileType == "application/pdf" && d.FileName == "form.pdf" &&
						d.Kind == models.KindPensiun && strings.HasPrefix(d.FileURL, "https://cdn.test/layanan/layanan-")
				})).Return(int64(1), nil)
				r.On("GetDocument", ctx, int64(1)).Return(models.ServiceDocument{ID: 1}, nil)
			},
		},
		{
			name:      "unknown kind",
			in:        CreateInput{Title: "Formulir", Kind: "Mutasi", File: pdfURI},
			mockSetup: func(r *MockLayananRepository, b *MockBlobStore) {},
			wantErr:   true,
			wantKind:  apperr.KindBadRequest,
		},
		{
			name:      "remote url rejected",
			in:        CreateInput{Title: "Formulir", Kind: models.KindPensiun, File: "https://example.com/a.pdf"},
			mockSetup: func(r *MockLayananRepository, b *MockBlobStore) {},
			wantErr:   true,
			wantKind:  apperr.KindBadRequest,
		},
		{
			name: "oversized file is a bad request",
			in:   CreateInput{Title: "Formulir", Kind: models.KindPensiun, File: pdfURI},
			mockSetup: func(r *MockLayananRepository, b *MockBlobStore) {
				b.On("Upload", ctx, Bucket, pdfName, mock.Anything, "application/pdf").Return(storage.ErrFileTooLarge)
			},
			wantErr:  true,
			wantKind: apperr.KindBadRequest,
		},
		{
			name: "insert failure removes upload",
			in:   CreateInput{Title: "Formulir", Kind: models.KindPensiun, File: pdfURI},
			mockSetup: func(r *MockLayananRepository, b *MockBlobStore) {
				b.On("Upload", ctx, Bucket, pdfName, mock.Anything, "application/pdf").Return(nil)
				r.On("SaveDocument", ctx, mock.Anything).Return(int64(0), errors.New("db down"))
				b.On("Remove", ctx, Bucket, mock.AnythingOfType("[]string")).Return(nil)
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, blobs := new(MockLayananRepository), new(MockBlobStore)
			tt.mockSetup(repo, blobs)

			_, err := newService(repo, blobs).Create(ctx, tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
			blobs.AssertExpectations(t)
		})
	}
}

func TestLayananService_Update(t *testing.T) {
	ctx := context.Background()
	existing := models.ServiceDocument{ID: 4, FileURL: "https://cdn.test/layanan/layanan-1-abcdef.pdf"}

	t.Run("new file replaces blob", func(t *testing.T) {
		repo, blobs := new(MockLayananRepository), new(MockBlobStore)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
		blobs.On("Remove", ctx, Bucket, []string{"layanan-1-abcdef.pdf"}).Return(nil).Once()
		blobs.On("Upload", ctx, Bucket, pdfName, mock.Anything, "application/pdf").Return(nil)
		repo.On("UpdateDocumentFields", ctx, int64(4), mock.MatchedBy(func(u map[string]interface{}) bool {
			return u["jenis_file"] == "application/pdf" && u["ukuran_file"] == int64(8) && u["url_file"] != nil && len(u) == 3
		})).Return(nil)

		_, err := newService(repo, blobs).Update(ctx, 4, UpdateInput{File: pdfURI})

		require.NoError(t, err)
		repo.AssertExpectations(t)
		blobs.AssertExpectations(t)
	})

	t.Run("remote url removes stored blob", func(t *testing.T) {
		repo, blobs := new(MockLayananRepository), new(MockBlobStore)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
		blobs.On("Remove", ctx, Bucket, []string{"layanan-1-abcdef.pdf"}).Return(nil).Once()
		repo.On("UpdateDocumentFields", ctx, int64(4), map[string]interface{}{
			"url_file": "https://example.com/form.pdf",
		}).Return(nil)

		_, err := newService(repo, blobs).Update(ctx, 4, UpdateInput{File: "https://example.com/form.pdf"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
		blobs.AssertExpectations(t)
		blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("same remote url keeps blob", func(t *testing.T) {
		repo, blobs := new(MockLayananRepository), new(MockBlobStore)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
		repo.On("UpdateDocumentFields", ctx, int64(4), map[string]interface{}{"url_file": existing.FileURL}).Return(nil)

		_, err := newService(repo, blobs).Update(ctx, 4, UpdateInput{File: existing.FileURL})

		require.NoError(t, err)
		blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("oversized replacement is a bad request", func(t *testing.T) {
		repo, blobs := new(MockLayananRepository), new(MockBlobStore)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
		blobs.On("Remove", ctx, Bucket, []string{"layanan-1-abcdef.pdf"}).Return(nil)
		blobs.On("Upload", ctx, Bucket, pdfName, mock.Anything, "application/pdf").Return(storage.ErrFileTooLarge)

		_, err := newService(repo, blobs).Update(ctx, 4, UpdateInput{File: pdfURI})

		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
		repo.AssertNotCalled(t, "UpdateDocumentFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("title only keeps file", func(t *testing.T) {
		repo, blobs := new(MockLayananRepository), new(MockBlobStore)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
		repo.On("UpdateDocumentFields", ctx, int64(4), map[string]interface{}{"judul": "Baru"}).Return(nil)

		_, err := newService(repo, blobs).Update(ctx, 4, UpdateInput{Title: " Baru "})

		require.NoError(t, err)
		blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nothing to update", func(t *testing.T) {
		repo := new(MockLayananRepository)
		repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)

		_, err := newService(repo, new(MockBlobStore)).Update(ctx, 4, UpdateInput{})

		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockLayananRepository)
		repo.On("GetDocument", ctx, int64(4)).Return(models.ServiceDocument{}, storage.ErrNotFound)

		_, err := newService(repo, new(MockBlobStore)).Update(ctx, 4, UpdateInput{Title: "x"})

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestLayananService_Delete(t *testing.T) {
	ctx := context.Background()
	repo, blobs := new(MockLayananRepository), new(MockBlobStore)
	existing := models.ServiceDocument{ID: 4, FileURL: "https://cdn.test/layanan/layanan-1-abcdef.pdf"}

	var calls []string
	repo.On("GetDocument", ctx, int64(4)).Return(existing, nil)
	blobs.On("Remove", ctx, Bucket, []string{"layanan-1-abcdef.pdf"}).Return(nil).Run(func(mock.Arguments) { calls = append(calls, "blob") })
	repo.On("DeleteDocument", ctx, int64(4)).Return(nil).Run(func(mock.Arguments) { calls = append(calls, "row") })

	got, err := newService(repo, blobs).Delete(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.Equal(t, []string{"blob", "row"}, calls)
}

func TestLayananService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("date range ends at end of day", func(t *testing.T) {
		repo := new(MockLayananRepository)
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)
		repo.On("ListDocuments", ctx, models.ServiceFilter{Kind: models.KindUsulanKarpeg, From: &from, To: &to}).
			Return([]models.ServiceDocument{}, nil)

		_, err := newService(repo, new(MockBlobStore)).List(ctx, ListInput{
			Kind:     models.KindUsulanKarpeg,
			DateFrom: "2024-01-01",
			DateTo:   "2024-01-31",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("single date end ignored", func(t *testing.T) {
		repo := new(MockLayananRepository)
		repo.On("ListDocuments", ctx, models.ServiceFilter{}).Return([]models.ServiceDocument{}, nil)

		_, err := newService(repo, new(MockBlobStore)).List(ctx, ListInput{DateFrom: "2024-01-01"})

		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockLayananRepository)
		id := int64(7)
		repo.On("ListDocuments", ctx, models.ServiceFilter{ID: &id}).Return([]models.ServiceDocument{}, nil)

		_, err := newService(repo, new(MockBlobStore)).List(ctx, ListInput{ID: &id})

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := newService(new(MockLayananRepository), new(MockBlobStore)).List(ctx, ListInput{DateFrom: "kemarin", DateTo: "2024-01-01"})
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	})
}
