// Package auth decides whether a caller may use the admin panel.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/storage"

	"github.com/google/uuid"
)

type AdminProvider interface {
	GetAdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error)
}

// Gate reads the caller's admin row on every check. Nothing is cached, so a
// revoked approval takes effect on the next request.
type Gate struct {
	log    *slog.Logger
	admins AdminProvider
}

func NewGate(log *slog.Logger, admins AdminProvider) *Gate {
	return &Gate{log: log, admins: admins}
}

func (g *Gate) RequireApproved(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.Gate.RequireApproved"

	admin, err := g.lookup(ctx, op, userID)
	if err != nil {
		return err
	}

	if admin.Status != models.StatusApproved {
		return apperr.Forbidden("akun belum disetujui")
	}

	return nil
}

func (g *Gate) RequireApprovedSuperadmin(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.Gate.RequireApprovedSuperadmin"

	admin, err := g.lookup(ctx, op, userID)
	if err != nil {
		return err
	}

	if !admin.IsApprovedSuperadmin() {
		g.log.Warn("superadmin check failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("role", string(admin.Role)),
			slog.String("status", string(admin.Status)),
		)
		return apperr.Forbidden("hanya superadmin yang disetujui yang dapat mengakses")
	}

	return nil
}

func (g *Gate) lookup(ctx context.Context, op string, userID uuid.UUID) (models.Admin, error) {
	admin, err := g.admins.GetAdminByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, apperr.Forbidden("admin tidak terdaftar")
		}
		g.log.Error("failed to load admin", slog.String("op", op), sl.Err(err))
		return models.Admin{}, apperr.Internal("gagal memeriksa hak akses", fmt.Errorf("%s: %w", op, err))
	}

	return admin, nil
}
