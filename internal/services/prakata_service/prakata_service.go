package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"
	"cabdin/internal/storage"
)

type Sanitizer interface {
	Sanitize(html string) string
}

// Input is used for both create and update. Empty Subtitle and Closing are
// stored as NULL.
type Input struct {
	Title    string
	Subtitle string
	Body     string
	Closing  string
}

type PrakataService struct {
	log  *slog.Logger
	repo repository.PrakataRepository
	san  Sanitizer
}

func NewPrakataService(log *slog.Logger, repo repository.PrakataRepository, san Sanitizer) *PrakataService {
	return &PrakataService{log: log, repo: repo, san: san}
}

func (s *PrakataService) List(ctx context.Context) ([]models.Prakata, error) {
	const op = "prakata_service.List"

	list, err := s.repo.ListPrakata(ctx)
	if err != nil {
		s.log.Error("failed to list prakata", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data prakata", fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *PrakataService) Get(ctx context.Context, id int64) (models.Prakata, error) {
	const op = "prakata_service.Get"

	p, err := s.repo.GetPrakata(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Prakata{}, apperr.NotFound("prakata dengan ID %d tidak ditemukan", id)
		}
		s.log.Error("failed to get prakata", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Prakata{}, apperr.Internal("gagal mengambil prakata", fmt.Errorf("%s: %w", op, err))
	}

	return p, nil
}

func (s *PrakataService) Create(ctx context.Context, in Input) (models.Prakata, error) {
	const op = "prakata_service.Create"

	p, err := s.build(in)
	if err != nil {
		return models.Prakata{}, err
	}

	id, err := s.repo.SavePrakata(ctx, p)
	if err != nil {
		s.log.Error("failed to save prakata", slog.String("op", op), sl.Err(err))
		return models.Prakata{}, apperr.Internal("gagal membuat prakata baru", fmt.Errorf("%s: %w", op, err))
	}

	s.log.Info("prakata created", slog.String("op", op), slog.Int64("id", id))

	return s.Get(ctx, id)
}

// Update replaces every field of the prakata.
func (s *PrakataService) Update(ctx context.Context, id int64, in Input) (models.Prakata, error) {
	const op = "prakata_service.Update"

	p, err := s.build(in)
	if err != nil {
		return models.Prakata{}, err
	}

	err = s.repo.UpdatePrakataFields(ctx, id, map[string]interface{}{
		"judul":     p.Title,
		"sub_judul": p.Subtitle,
		"isi":       p.Body,
		"penutup":   p.Closing,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Prakata{}, apperr.NotFound("prakata dengan ID %d tidak ditemukan", id)
		}
		s.log.Error("failed to update prakata", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Prakata{}, apperr.Internal("gagal memperbarui prakata", fmt.Errorf("%s: %w", op, err))
	}

	return s.Get(ctx, id)
}

func (s *PrakataService) Delete(ctx context.Context, id int64) (models.Prakata, error) {
	const op = "prakata_service.Delete"

	snapshot, err := s.Get(ctx, id)
	if err != nil {
		return models.Prakata{}, err
	}

	if err := s.repo.DeletePrakata(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Prakata{}, apperr.NotFound("prakata dengan ID %d tidak ditemukan", id)
		}
		s.log.Error("failed to delete prakata", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Prakata{}, apperr.Internal("gagal menghapus prakata", fmt.Errorf("%s: %w", op, err))
	}

	return snapshot, nil
}

func (s *PrakataService) build(in Input) (models.Prakata, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Prakata{}, apperr.BadRequest("judul wajib diisi")
	}
	if strings.TrimSpace(in.Body) == "" {
		return models.Prakata{}, apperr.BadRequest("isi wajib diisi")
	}

	return models.Prakata{
		Title:    title,
		Subtitle: nullable(in.Subtitle),
		Body:     s.san.Sanitize(in.Body),
		Closing:  nullable(in.Closing),
	}, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
