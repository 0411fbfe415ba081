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

type UpdateInput struct {
	Email   string
	Phone   string
	Address string
}

type FooterService struct {
	log  *slog.Logger
	repo repository.FooterRepository
}

func NewFooterService(log *slog.Logger, repo repository.FooterRepository) *FooterService {
	return &FooterService{log: log, repo: repo}
}

func (s *FooterService) List(ctx context.Context) ([]models.Footer, error) {
	const op = "footer_service.List"

	list, err := s.repo.ListFooters(ctx)
	if err != nil {
		s.log.Error("failed to list footers", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil data footer", fmt.Errorf("%s: %w", op, err))
	}

	return list, nil
}

func (s *FooterService) Get(ctx context.Context, id int64) (models.Footer, error) {
	const op = "footer_service.Get"

	footer, err := s.repo.GetFooter(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Footer{}, apperr.NotFound("footer %d tidak ditemukan", id)
		}
		s.log.Error("failed to get footer", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.Footer{}, apperr.Internal("gagal mengambil footer", fmt.Errorf("%s: %w", op, err))
	}

	return footer, nil
}

// Update writes the non-empty fields of in.
func (s *FooterService) Update(ctx context.Context, id int64, in UpdateInput) (models.Footer, error) {
	const op = "footer_service.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("id", id))

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(in.Email); v != "" {
		updates["email"] = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		updates["no_telp"] = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		updates["alamat"] = v
	}

	if len(updates) == 0 {
		return models.Footer{}, apperr.BadRequest("tidak ada data valid untuk diperbarui")
	}

	if err := s.repo.UpdateFooterFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Footer{}, apperr.NotFound("footer %d tidak ditemukan", id)
		}
		log.Error("failed to update footer", sl.Err(err))
		return models.Footer{}, apperr.Internal("gagal memperbarui footer", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("footer updated")

	return s.Get(ctx, id)
}
