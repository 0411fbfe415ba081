package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/datauri"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"
	"cabdin/internal/storage"
)

const (
	Bucket     = "layanan"
	filePrefix = "layanan"
)

type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
}

// ListInput dates are YYYY-MM-DD or RFC 3339. The range only applies when
// both ends are given; a date-only DateTo includes the whole day.
type ListInput struct {
	ID       *int64
	Kind     models.ServiceKind
	FileType string
	DateFrom string
	DateTo   string
}

type CreateInput struct {
	Title    string
	Kind     models.ServiceKind
	FileName string
	File     string // data URI
}

// UpdateInput fields left blank keep their stored value. File is a data URI
// replacing the stored blob or an http(s) URL stored as is.
type UpdateInput struct {
	Title    string
	Kind     models.ServiceKind
	FileName string
	File     string
}

type LayananService struct {
	log   *slog.Logger
	repo  repository.LayananRepository
	blobs BlobStore
}

func NewLayananService(log *slog.Logger, repo repository.LayananRepository, blobs BlobStore) *LayananService {
	return &LayananService{log: log, repo: repo, blobs: blobs}
}

func (s *LayananService) List(ctx context.Context, in ListInput) ([]models.ServiceDocument, error) {
	const op = "layanan_service.List"

	filter := models.ServiceFilter{
		ID:       in.ID,
		FileType: strings.TrimSpace(in.FileType),
	}

	if in.Kind != "" {
		if !in.Kind.Valid() {
			return nil, apperr.BadRequest("jenis layanan %q tidak dikenal", in.Kind)
		}
		filter.Kind = in.Kind
	}

	if in.DateFrom != "" && in.DateTo != "" {
		from, _, err := parseDate(in.DateFrom)
		if err != nil {
			return nil, apperr.BadRequest("date_from tidak valid: %q", in.DateFrom)
		}
		to, dateOnly, err := parseDate(in.DateTo)
		if err != nil {
			return nil, apperr.BadRequest("date_to tidak valid: %q", in.DateTo)
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.From, filter.To = &from, &to
	}

	list, err := s.repo.ListDocuments(ctx, filter)
	if err != nil {
		s.log.Error("failed to list documents", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mendapatkan data layanan", fmt.Errorf("%s: %w", op, err))
	}

	if in.ID != nil && len(list) == 0 {
		return nil, apperr.NotFound("layanan tidak ditemukan")
	}

	return list, nil
}

func (s *LayananService) Get(ctx context.Context, id int64) (models.ServiceDocument, error) {
	const op = "layanan_service.Get"

	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.ServiceDocument{}, apperr.NotFound("layanan tidak ditemukan")
		}
		s.log.Error("failed to get document", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.ServiceDocument{}, apperr.Internal("gagal mendapatkan layanan", fmt.Errorf("%s: %w", op, err))
	}

	return doc, nil
}

// Create uploads the file and stores its decoded size and MIME type.
func (s *LayananService) Create(ctx context.Context, in CreateInput) (models.ServiceDocument, error) {
	const op = "layanan_service.Create"

	log := s.log.With(slog.String("op", op))

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.ServiceDocument{}, apperr.BadRequest("judul wajib diisi")
	}
	if !in.Kind.Valid() {
		return models.ServiceDocument{}, apperr.BadRequest("jenis layanan %q tidak dikenal", in.Kind)
	}
	if !datauri.IsDataURI(in.File) {
		return models.ServiceDocument{}, apperr.BadRequest("file harus berupa data URI base64")
	}

	f, err := datauri.Decode(in.File)
	if err != nil {
		return models.ServiceDocument{}, apperr.BadRequest("file base64 tidak valid")
	}

	name, url, err := s.upload(ctx, f)
	if err != nil {
		log.Error("failed to upload file", sl.Err(err))
		return models.ServiceDocument{}, uploadFailed(op, "gagal upload file", err)
	}

	fileName := strings.TrimSpace(in.FileName)
	if fileName == "" {
		fileName = name
	}

	id, err := s.repo.SaveDocument(ctx, models.ServiceDocument{
		Title:    title,
		FileName: fileName,
		FileURL:  url,
		FileSize: f.Size(),
		FileType: f.MIME,
		Kind:     in.Kind,
	})
	if err != nil {
		log.Error("failed to save document", sl.Err(err))
		if rmErr := s.blobs.Remove(ctx, Bucket, name); rmErr != nil {
			log.Warn("failed to remove orphaned file", slog.String("name", name), sl.Err(rmErr))
		}
		return models.ServiceDocument{}, apperr.Internal("gagal membuat layanan", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("document created", slog.Int64("id", id), slog.Int64("size", f.Size()))

	return s.Get(ctx, id)
}

func (s *LayananService) Update(ctx context.Context, id int64, in UpdateInput) (models.ServiceDocument, error) {
	const op = "layanan_service.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.ServiceDocument{}, err
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(in.Title); v != "" {
		updates["judul"] = v
	}
	if in.Kind != "" {
		if !in.Kind.Valid() {
			return models.ServiceDocument{}, apperr.BadRequest("jenis layanan %q tidak dikenal", in.Kind)
		}
		updates["jenis_layanan"] = in.Kind
	}
	if v := strings.TrimSpace(in.FileName); v != "" {
		updates["nama_file"] = v
	}

	file := strings.TrimSpace(in.File)
	switch {
	case file == "":
	case datauri.IsDataURI(file):
		f, err := datauri.Decode(file)
		if err != nil {
			return models.ServiceDocument{}, apperr.BadRequest("file base64 tidak valid")
		}

		if old := datauri.BlobName(existing.FileURL); old != "" {
			if err := s.blobs.Remove(ctx, Bucket, old); err != nil {
				log.Error("failed to remove old file", sl.Err(err))
				return models.ServiceDocument{}, apperr.Internal("gagal menghapus file lama", fmt.Errorf("%s: %w", op, err))
			}
		}

		_, url, err := s.upload(ctx, f)
		if err != nil {
			log.Error("failed to upload file", sl.Err(err))
			return models.ServiceDocument{}, uploadFailed(op, "gagal upload file baru", err)
		}

		updates["url_file"] = url
		updates["jenis_file"] = f.MIME
		updates["ukuran_file"] = f.Size()
	case datauri.IsRemoteURL(file):
		if old := datauri.BlobName(existing.FileURL); old != "" && existing.FileURL != file {
			if err := s.blobs.Remove(ctx, Bucket, old); err != nil {
				log.Error("failed to remove old file", sl.Err(err))
				return models.ServiceDocument{}, apperr.Internal("gagal menghapus file lama", fmt.Errorf("%s: %w", op, err))
			}
		}

		updates["url_file"] = file
	default:
		return models.ServiceDocument{}, apperr.BadRequest("file harus http(s) atau data URI")
	}

	if len(updates) == 0 {
		return models.ServiceDocument{}, apperr.BadRequest("tidak ada data valid untuk diperbarui")
	}

	if err := s.repo.UpdateDocumentFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.ServiceDocument{}, apperr.NotFound("layanan tidak ditemukan")
		}
		log.Error("failed to update document", sl.Err(err))
		return models.ServiceDocument{}, apperr.Internal("gagal memperbarui layanan", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("document updated")

	return s.Get(ctx, id)
}

// Delete removes the stored file, then the row, and returns the removed row.
func (s *LayananService) Delete(ctx context.Context, id int64) (models.ServiceDocument, error) {
	const op = "layanan_service.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.ServiceDocument{}, err
	}

	if name := datauri.BlobName(existing.FileURL); name != "" {
		if err := s.blobs.Remove(ctx, Bucket, name); err != nil {
			log.Error("failed to remove file", sl.Err(err))
			return models.ServiceDocument{}, apperr.Internal("gagal menghapus file", fmt.Errorf("%s: %w", op, err))
		}
	}

	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.ServiceDocument{}, apperr.NotFound("layanan tidak ditemukan")
		}
		log.Error("failed to delete document", sl.Err(err))
		return models.ServiceDocument{}, apperr.Internal("gagal menghapus layanan", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("document deleted")

	return existing, nil
}

func (s *LayananService) upload(ctx context.Context, f *datauri.File) (name, url string, err error) {
	name = datauri.NewFileName(filePrefix, f.Ext)
	if err := s.blobs.Upload(ctx, Bucket, name, f.Data, f.MIME); err != nil {
		return "", "", err
	}
	return name, s.blobs.PublicURL(Bucket, name), nil
}

func parseDate(v string) (t time.Time, dateOnly bool, err error) {
	v = strings.TrimSpace(v)
	if t, err = time.Parse(time.DateOnly, v); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, v)
	return t, false, err
}

// uploadFailed classifies an Upload error. An oversized payload is the
// client's fault, anything else is internal.
func uploadFailed(op, msg string, err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) {
		return apperr.BadRequest("ukuran file melebihi batas maksimum")
	}
	return apperr.Internal(msg, fmt.Errorf("%s: %w", op, err))
}
