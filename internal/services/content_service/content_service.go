// Package services implements the article-with-image lifecycle shared by
// berita, inovasi, cerita praktik baik and seputar cabdin.
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

type Sanitizer interface {
	Sanitize(html string) string
}

type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
}

// Config names one content module.
type Config struct {
	Name   string // used in logs and messages, e.g. "berita"
	Bucket string
	Prefix string
}

// ImageInput is either a data URI to upload or an already hosted http(s) URL.
type ImageInput struct {
	URL     string
	Caption string
}

type CreateInput struct {
	Title       string
	Author      string
	Body        string
	PublishedAt *time.Time
	Image       *ImageInput
}

// UpdateInput fields left blank keep their stored value.
type UpdateInput struct {
	Title       string
	Author      string
	Body        string
	PublishedAt *time.Time
	Image       *ImageInput
}

// FilterInput.Date is YYYY, YYYY-MM or YYYY-MM-DD.
type FilterInput struct {
	Title  string
	Author string
	Date   string
}

type ContentService struct {
	log   *slog.Logger
	cfg   Config
	repo  repository.ContentRepository
	san   Sanitizer
	blobs BlobStore
}

func NewContentService(log *slog.Logger, cfg Config, repo repository.ContentRepository, san Sanitizer, blobs BlobStore) *ContentService {
	return &ContentService{
		log:   log.With(slog.String("module", cfg.Name)),
		cfg:   cfg,
		repo:  repo,
		san:   san,
		blobs: blobs,
	}
}

func (s *ContentService) Get(ctx context.Context, id int64) (*models.ContentJoined, error) {
	const op = "content_service.Get"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	rec, err := s.repo.GetRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("%s %d tidak ditemukan", s.cfg.Name, id)
		}
		log.Error("failed to get record", sl.Err(err))
		return nil, apperr.Internal("gagal mengambil "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	return rec, nil
}

func (s *ContentService) List(ctx context.Context) ([]models.ContentJoined, error) {
	const op = "content_service.List"

	list, err := s.repo.ListRecords(ctx, models.ContentFilter{})
	if err != nil {
		s.log.Error("failed to list records", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil daftar "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *ContentService) Filter(ctx context.Context, in FilterInput) ([]models.ContentJoined, error) {
	const op = "content_service.Filter"

	filter := models.ContentFilter{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
	}

	if d := strings.TrimSpace(in.Date); d != "" {
		from, to, err := dateRange(d)
		if err != nil {
			return nil, apperr.BadRequest("format tanggal tidak valid: %q", d)
		}
		filter.From, filter.To = &from, &to
	}

	list, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		s.log.Error("failed to filter records", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal memfilter "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

// Create stores a sanitized record and its optional image, returning the joined row.
func (s *ContentService) Create(ctx context.Context, in CreateInput) (*models.ContentJoined, error) {
	const op = "content_service.Create"

	log := s.log.With(slog.String("op", op))

	if in.Image != nil && strings.TrimSpace(in.Image.URL) == "" {
		in.Image = nil
	}

	var inline *datauri.File
	if in.Image != nil {
		f, err := checkImage(in.Image.URL)
		if err != nil {
			return nil, err
		}
		inline = f
	}

	id, err := s.repo.SaveRecord(ctx, models.ContentRecord{
		Title:       in.Title,
		Author:      in.Author,
		Body:        s.san.Sanitize(in.Body),
		PublishedAt: in.PublishedAt,
	})
	if err != nil {
		log.Error("failed to save record", sl.Err(err))
		return nil, apperr.Internal("gagal membuat "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	log = log.With(slog.Int64("id", id))

	if in.Image != nil {
		url := strings.TrimSpace(in.Image.URL)
		if inline != nil {
			url, err = s.upload(ctx, inline)
			if err != nil {
				log.Error("failed to upload image", sl.Err(err))
				return nil, uploadFailed(op, "gagal mengunggah gambar", err)
			}
		}

		_, err = s.repo.SaveImage(ctx, models.ImageRef{
			OwnerID: id,
			URL:     url,
			Caption: optional(in.Image.Caption),
		})
		if err != nil {
			log.Error("failed to save image", sl.Err(err))
			return nil, apperr.Internal("gagal menyimpan gambar", fmt.Errorf("%s: %w", op, err))
		}
	}

	log.Info("record created")

	return s.Get(ctx, id)
}

// Update applies the non-blank fields of in. An inline image replaces the
// stored blob; any other image input only touches the caption.
func (s *ContentService) Update(ctx context.Context, id int64, in UpdateInput) (*models.ContentJoined, error) {
	const op = "content_service.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(in.Title); v != "" {
		updates["judul"] = v
	}
	if v := strings.TrimSpace(in.Author); v != "" {
		updates["penulis"] = v
	}
	if strings.TrimSpace(in.Body) != "" {
		updates["isi"] = s.san.Sanitize(in.Body)
	}
	if in.PublishedAt != nil {
		updates["tanggal_diterbitkan"] = *in.PublishedAt
	}

	if in.Image != nil {
		if err := s.updateImage(ctx, existing, in.Image); err != nil {
			log.Error("failed to update image", sl.Err(err))
			return nil, err
		}
	}

	if err := s.repo.UpdateRecordFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("%s %d tidak ditemukan", s.cfg.Name, id)
		}
		log.Error("failed to update record", sl.Err(err))
		return nil, apperr.Internal("gagal memperbarui "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	log.Info("record updated")

	return s.Get(ctx, id)
}

func (s *ContentService) updateImage(ctx context.Context, existing *models.ContentJoined, img *ImageInput) error {
	const op = "content_service.updateImage"

	inline, err := checkImage(img.URL)
	if err != nil {
		return err
	}

	current := existing.FirstImage()
	caption := strings.TrimSpace(img.Caption)

	if inline == nil {
		if caption == "" || current == nil {
			return nil
		}
		if err := s.repo.UpdateImageFields(ctx, current.ID, map[string]interface{}{"keterangan": caption}); err != nil {
			return apperr.Internal("gagal memperbarui keterangan gambar", fmt.Errorf("%s: %w", op, err))
		}
		return nil
	}

	if current != nil {
		if name := datauri.BlobName(current.URL); name != "" {
			if err := s.blobs.Remove(ctx, s.cfg.Bucket, name); err != nil {
				return apperr.Internal("gagal menghapus gambar lama", fmt.Errorf("%s: %w", op, err))
			}
		}
	}

	url, err := s.upload(ctx, inline)
	if err != nil {
		return uploadFailed(op, "gagal mengunggah gambar", err)
	}

	if current == nil {
		_, err = s.repo.SaveImage(ctx, models.ImageRef{
			OwnerID: existing.ID,
			URL:     url,
			Caption: optional(caption),
		})
		if err != nil {
			return apperr.Internal("gagal menyimpan gambar", fmt.Errorf("%s: %w", op, err))
		}
		return nil
	}

	fields := map[string]interface{}{"url_gambar": url}
	if caption != "" {
		fields["keterangan"] = caption
	}
	if err := s.repo.UpdateImageFields(ctx, current.ID, fields); err != nil {
		return apperr.Internal("gagal memperbarui gambar", fmt.Errorf("%s: %w", op, err))
	}

	return nil
}

// Delete removes the record's blobs, image rows and the record itself and
// returns what was removed.
func (s *ContentService) Delete(ctx context.Context, id int64) (*models.ContentJoined, error) {
	const op = "content_service.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	snapshot, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, img := range snapshot.Images {
		if name := datauri.BlobName(img.URL); name != "" {
			names = append(names, name)
		}
	}

	if len(names) > 0 {
		if err := s.blobs.Remove(ctx, s.cfg.Bucket, names...); err != nil {
			log.Error("failed to remove blobs", sl.Err(err))
			return nil, apperr.Internal("gagal menghapus gambar", fmt.Errorf("%s: %w", op, err))
		}
	}

	if err := s.repo.DeleteImagesByOwner(ctx, id); err != nil {
		log.Error("failed to delete image rows", sl.Err(err))
		return nil, apperr.Internal("gagal menghapus data gambar", fmt.Errorf("%s: %w", op, err))
	}

	if err := s.repo.DeleteRecord(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("%s %d tidak ditemukan", s.cfg.Name, id)
		}
		log.Error("failed to delete record", sl.Err(err))
		return nil, apperr.Internal("gagal menghapus "+s.cfg.Name, fmt.Errorf("%s: %w", op, err))
	}

	log.Info("record deleted", slog.Int("blobs", len(names)))

	return snapshot, nil
}

func (s *ContentService) upload(ctx context.Context, f *datauri.File) (string, error) {
	name := datauri.NewFileName(s.cfg.Prefix, f.Ext)

	if err := s.blobs.Upload(ctx, s.cfg.Bucket, name, f.Data, f.MIME); err != nil {
		return "", err
	}

	return s.blobs.PublicURL(s.cfg.Bucket, name), nil
}

// checkImage returns the decoded payload of a data URI, nil for an http(s)
// URL or an empty one, and BadRequest for anything else.
func checkImage(raw string) (*datauri.File, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		return nil, nil
	case datauri.IsDataURI(raw):
		f, err := datauri.Decode(raw)
		if err != nil {
			return nil, apperr.BadRequest("gambar base64 tidak valid")
		}
		return f, nil
	case datauri.IsRemoteURL(raw):
		return nil, nil
	default:
		return nil, apperr.BadRequest("URL gambar harus http(s) atau data URI")
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func dateRange(d string) (time.Time, time.Time, error) {
	layouts := []struct {
		layout string
		next   func(time.Time) time.Time
	}{
		{"2006", func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }},
		{"2006-01", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
		{"2006-01-02", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	}

	for _, l := range layouts {
		if len(d) != len(l.layout) {
			continue
		}
		from, err := time.Parse(l.layout, d)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, l.next(from), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unsupported date %q", d)
}

// uploadFailed classifies an Upload error. An oversized payload is the
// client's fault, anything else is internal.
func uploadFailed(op, msg string, err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) {
		return apperr.BadRequest("ukuran file melebihi batas maksimum")
	}
	return apperr.Internal(msg, fmt.Errorf("%s: %w", op, err))
}
