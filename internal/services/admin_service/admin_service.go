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

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UpdateInput struct {
	Status      models.ApprovalStatus
	Role        models.Role
	NewPassword string
	OldPassword string
}

// AdminService manages panel accounts. Callers are checked by the
// authorization gate before any method runs.
type AdminService struct {
	log  *slog.Logger
	repo repository.AdminRepository
}

func NewAdminService(log *slog.Logger, repo repository.AdminRepository) *AdminService {
	return &AdminService{log: log, repo: repo}
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.Filter(ctx, models.AdminFilter{})
}

func (s *AdminService) Filter(ctx context.Context, filter models.AdminFilter) ([]models.Admin, error) {
	const op = "admin_service.Filter"

	if filter.Role != "" && !filter.Role.Valid() {
		return nil, apperr.BadRequest("role tidak dikenal: %s", filter.Role)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperr.BadRequest("status_approval tidak dikenal: %s", filter.Status)
	}
	filter.Email = strings.TrimSpace(filter.Email)

	admins, err := s.repo.ListAdmins(ctx, filter)
	if err != nil {
		s.log.Error("failed to list admins", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("gagal mengambil daftar admin", fmt.Errorf("%s: %w", op, err))
	}

	return admins, nil
}

func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (models.Admin, error) {
	const op = "admin_service.Get"

	admin, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, apperr.NotFound("admin dengan ID %s tidak ditemukan", id)
		}
		s.log.Error("failed to get admin", slog.String("op", op), sl.Err(err))
		return models.Admin{}, apperr.Internal("gagal mengambil admin", fmt.Errorf("%s: %w", op, err))
	}

	return admin, nil
}

// Update changes approval, role or password. A new password needs the
// current one.
func (s *AdminService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (models.Admin, error) {
	const op = "admin_service.Update"

	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	target, err := s.Get(ctx, id)
	if err != nil {
		return models.Admin{}, err
	}

	updates := map[string]interface{}{}

	if in.Status != "" {
		if !in.Status.Valid() {
			return models.Admin{}, apperr.BadRequest("status_approval tidak dikenal: %s", in.Status)
		}
		updates["status_approval"] = string(in.Status)
	}

	if in.Role != "" {
		if !in.Role.Valid() {
			return models.Admin{}, apperr.BadRequest("role tidak dikenal: %s", in.Role)
		}
		updates["role"] = string(in.Role)
	}

	if in.NewPassword != "" {
		if in.OldPassword == "" {
			return models.Admin{}, apperr.BadRequest("password lama harus diisi untuk mengganti password")
		}
		if err := bcrypt.CompareHashAndPassword(target.PasswordHash, []byte(in.OldPassword)); err != nil {
			return models.Admin{}, apperr.Forbidden("password lama tidak sesuai")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return models.Admin{}, apperr.BadRequest("password terlalu panjang")
			}
			return models.Admin{}, apperr.Internal("gagal memperbarui password", fmt.Errorf("%s: %w", op, err))
		}
		updates["password_hash"] = hash
	}

	if len(updates) == 0 {
		return models.Admin{}, apperr.BadRequest("tidak ada data yang diperbarui")
	}

	if err := s.repo.UpdateAdminFields(ctx, id, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, apperr.NotFound("admin dengan ID %s tidak ditemukan", id)
		}
		log.Error("failed to update admin", sl.Err(err))
		return models.Admin{}, apperr.Internal("gagal memperbarui admin", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("admin updated")

	return s.Get(ctx, id)
}

func (s *AdminService) Delete(ctx context.Context, actorID, id uuid.UUID) (models.Admin, error) {
	const op = "admin_service.Delete"

	if actorID == id {
		return models.Admin{}, apperr.BadRequest("tidak dapat menghapus akun sendiri")
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return models.Admin{}, err
	}

	if err := s.repo.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, apperr.NotFound("admin dengan ID %s tidak ditemukan", id)
		}
		s.log.Error("failed to delete admin", slog.String("op", op), sl.Err(err))
		return models.Admin{}, apperr.Internal("gagal menghapus admin", fmt.Errorf("%s: %w", op, err))
	}

	s.log.Info("admin deleted", slog.String("op", op), slog.String("id", id.String()))

	return target, nil
}
