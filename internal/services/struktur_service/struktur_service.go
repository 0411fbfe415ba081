package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/datauri"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"
	"cabdin/internal/storage"
)

const (
	Bucket              = "struktur-organisasi"
	structurePrefix     = "struktur"
	documentationPrefix = "dokumentasi"
)

type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
}

// Input holds data URIs. On update an empty field keeps the stored image.
type Input struct {
	StructureImage     string
	DocumentationImage string
}

type StrukturService struct {
	log   *slog.Logger
	repo  repository.StrukturRepository
	blobs BlobStore
}

func NewStrukturService(log *slog.Logger, repo repository.StrukturRepository, blobs BlobStore) *StrukturService {
	return &StrukturService{log: log, repo: repo, blobs: blobs}
}

// List returns every structure ordered by id, or only the one with id when given.
func (s *StrukturService) List(ctx context.Context, id *int64) ([]models.OrgStructure, error) {
	const op = "struktur_service.List"

	list, err := s.repo.ListStructures(ctx, id)
	if err != nil {
		s.log.Error("failed to list structures", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil struktur organisasi", fmt.Errorf("%s: %w", op, err))
	}

	if id != nil && len(list) == 0 {
		return nil, apperr.NotFound("struktur organisasi %d tidak ditemukan", *id)
	}

	return list, nil
}

func (s *StrukturService) Get(ctx context.Context, id int64) (models.OrgStructure, error) {
	const op = "struktur_service.Get"

	st, err := s.repo.GetStructure(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.OrgStructure{}, apperr.NotFound("struktur organisasi %d tidak ditemukan", id)
		}
		s.log.Error("failed to get structure", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.OrgStructure{}, apperr.Internal("gagal mengambil struktur organisasi", fmt.Errorf("%s: %w", op, err))
	}

	return st, nil
}

func (s *StrukturService) Create(ctx context.Context, in Input) (models.OrgStructure, error) {
	const op = "struktur_service.Create"

	log := s.log.With(slog.String("op", op))

	structure, err := decode(in.StructureImage, "gambar struktur")
	if err != nil {
		return models.OrgStructure{}, err
	}
	if structure == nil {
		return models.OrgStructure{}, apperr.BadRequest("gambar struktur wajib diisi")
	}

	documentation, err := decode(in.DocumentationImage, "gambar dokumentasi")
	if err != nil {
		return models.OrgStructure{}, err
	}
	if documentation == nil {
		return models.OrgStructure{}, apperr.BadRequest("gambar dokumentasi wajib diisi")
	}

	structureURL, err := s.upload(ctx, structurePrefix, structure)
	if err != nil {
		log.Error("failed to upload structure image", sl.Err(err))
		return models.OrgStructure{}, uploadFailed(op, "gagal mengunggah gambar struktur", err)
	}

	documentationURL, err := s.upload(ctx, documentationPrefix, documentation)
	if err != nil {
		log.Error("failed to upload documentation image", sl.Err(err))
		return models.OrgStructure{}, uploadFailed(op, "gagal mengunggah gambar dokumentasi", err)
	}

	id, err := s.repo.SaveStructure(ctx, models.OrgStructure{
		StructureImage:   structureURL,
		DocumentationImg: documentationURL,
	})
	if err != nil {
		log.Error("failed to save structure", sl.Err(err))
		return models.OrgStructure{}, apperr.Internal("gagal membuat struktur organisasi", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("structure created", slog.Int64("id", id))

	return s.Get(ctx, id)
}

// Update replaces only the images present in in. The previous blob of a
// replaced image is removed before the new one is uploaded.
func (s *StrukturService) Update(ctx context.Context, id int64, in Input) (models.OrgStructure, error) {
	const op = "struktur_service.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.OrgStructure{}, err
	}

	structure, err := decode(in.StructureImage, "gambar struktur")
	if err != nil {
		return models.OrgStructure{}, err
	}
	documentation, err := decode(in.DocumentationImage, "gambar dokumentasi")
	if err != nil {
		return models.OrgStructure{}, err
	}

	if structure == nil && documentation == nil {
		return models.OrgStructure{}, apperr.BadRequest("tidak ada gambar yang diperbarui")
	}

	updates := map[string]interface{}{}

	replace := []struct {
		column string
		prefix string
		old    string
		file   *datauri.File
	}{
		{"gambar_struktur", structurePrefix, existing.StructureImage, structure},
		{"gambar_dokumentasi", documentationPrefix, existing.DocumentationImg, documentation},
	}

	for _, r := range replace {
		if r.file == nil {
			continue
		}
		if name := datauri.BlobName(r.old); name != "" {
			if err := s.blobs.Remove(ctx, Bucket, name); err != nil {
				log.Error("failed to remove old image", slog.String("column", r.column), sl.Err(err))
				return models.OrgStructure{}, apperr.Internal("gagal menghapus gambar lama", fmt.Errorf("%s: %w", op, err))
			}
		}
		url, err := s.upload(ctx, r.prefix, r.file)
		if err != nil {
			log.Error("failed to upload image", slog.String("column", r.column), sl.Err(err))
			return models.OrgStructure{}, uploadFailed(op, "gagal mengunggah gambar", err)
		}
		updates[r.column] = url
	}

	if err := s.repo.UpdateStructureFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.OrgStructure{}, apperr.NotFound("struktur organisasi %d tidak ditemukan", id)
		}
		log.Error("failed to update structure", sl.Err(err))
		return models.OrgStructure{}, apperr.Internal("gagal memperbarui struktur organisasi", fmt.Errorf("%s: %w", op, err))
	}

	return s.Get(ctx, id)
}

func (s *StrukturService) Delete(ctx context.Context, id int64) (models.OrgStructure, error) {
	const op = "struktur_service.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.OrgStructure{}, err
	}

	var names []string
	for _, u := range []string{existing.StructureImage, existing.DocumentationImg} {
		if name := datauri.BlobName(u); name != "" {
			names = append(names, name)
		}
	}

	if len(names) > 0 {
		if err := s.blobs.Remove(ctx, Bucket, names...); err != nil {
			log.Error("failed to remove images", sl.Err(err))
			return models.OrgStructure{}, apperr.Internal("gagal menghapus gambar", fmt.Errorf("%s: %w", op, err))
		}
	}

	if err := s.repo.DeleteStructure(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.OrgStructure{}, apperr.NotFound("struktur organisasi %d tidak ditemukan", id)
		}
		log.Error("failed to delete structure", sl.Err(err))
		return models.OrgStructure{}, apperr.Internal("gagal menghapus struktur organisasi", fmt.Errorf("%s: %w", op, err))
	}

	return existing, nil
}

func (s *StrukturService) upload(ctx context.Context, prefix string, f *datauri.File) (string, error) {
	name := datauri.NewFileName(prefix, f.Ext)
	if err := s.blobs.Upload(ctx, Bucket, name, f.Data, f.MIME); err != nil {
		return "", err
	}
	return s.blobs.PublicURL(Bucket, name), nil
}

// decode returns nil for an empty value.
func decode(v, field string) (*datauri.File, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if !datauri.IsDataURI(v) {
		return nil, apperr.BadRequest("%s harus berupa data URI base64", field)
	}
	f, err := datauri.Decode(v)
	if err != nil {
		return nil, apperr.BadRequest("%s tidak valid", field)
	}
	return f, nil
}

func uploadFailed(op, msg string, err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) {
		return apperr.BadRequest("ukuran file melebihi batas maksimum")
	}
	return apperr.Internal(msg, fmt.Errorf("%s: %w", op, err))
}
