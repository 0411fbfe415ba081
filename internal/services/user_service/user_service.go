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

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account not approved")
)

type TokenIssuer interface {
	GenerateTokens(ctx context.Context, admin models.Admin) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, admin models.Admin) error
}

// UserService handles the caller's own account: register, login, refresh,
// logout and profile.
type UserService struct {
	log    *slog.Logger
	repo   repository.AdminRepository
	tokens TokenIssuer
}

func NewUserService(log *slog.Logger, repo repository.AdminRepository, tokens TokenIssuer) *UserService {
	return &UserService{log: log, repo: repo, tokens: tokens}
}

// Register creates a pending Admin account. A superadmin has to approve it
// before it can log in.
func (s *UserService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	const op = "user_service.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	log.Info("register admin")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return uuid.Nil, apperr.BadRequest("password terlalu panjang")
		}
		log.Error("failed to generate password hash", sl.Err(err))
		return uuid.Nil, apperr.Internal("gagal mendaftarkan admin", fmt.Errorf("%s: %w", op, err))
	}

	id, err := s.repo.SaveAdmin(ctx, models.Admin{
		Email:        email,
		PasswordHash: passHash,
		Role:         models.RoleAdmin,
		Status:       models.StatusPending,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Warn("admin already exists", sl.Err(err))
			return uuid.Nil, apperr.Conflict("email sudah terdaftar")
		}
		log.Error("failed to save admin", sl.Err(err))
		return uuid.Nil, apperr.Internal("gagal mendaftarkan admin", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("admin registered", slog.String("id", id.String()))

	return id, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	const op = "user_service.Login"

	log := s.log.With(slog.String("op", op), slog.String("email", email))

	log.Info("attempting to login admin")

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("admin not found")
			return nil, apperr.Wrap(apperr.KindUnauthorized, "email atau password salah", ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Err(err))
		return nil, apperr.Internal("gagal masuk", fmt.Errorf("%s: %w", op, err))
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return nil, apperr.Wrap(apperr.KindUnauthorized, "email atau password salah", ErrInvalidCredentials)
	}

	switch admin.Status {
	case models.StatusApproved:
	case models.StatusRejected:
		return nil, apperr.Wrap(apperr.KindForbidden, "akun ditolak", ErrNotApproved)
	default:
		return nil, apperr.Wrap(apperr.KindForbidden, "akun menunggu persetujuan superadmin", ErrNotApproved)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, admin)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return nil, apperr.Internal("gagal membuat token", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("admin logged in successfully")

	return tokens, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	return s.tokens.RefreshTokens(ctx, refreshToken)
}

func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	const op = "user_service.Logout"

	if err := s.tokens.RevokeAll(ctx, models.Admin{ID: userID}); err != nil {
		s.log.Error("failed to revoke tokens", slog.String("op", op), sl.Err(err))
		return apperr.Internal("gagal keluar", fmt.Errorf("%s: %w", op, err))
	}

	return nil
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (models.Admin, error) {
	const op = "user_service.Profile"

	admin, err := s.repo.GetAdminByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, apperr.NotFound("admin tidak ditemukan")
		}
		return models.Admin{}, apperr.Internal("gagal mengambil profil", fmt.Errorf("%s: %w", op, err))
	}

	return admin, nil
}
