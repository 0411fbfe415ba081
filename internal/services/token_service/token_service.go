package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cabdin/internal/domain/models"
	"cabdin/internal/lib/apperr"
	"cabdin/internal/lib/jwt"
	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/repository"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotInStorage = errors.New("token not found in storage")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, admin models.Admin) (*models.TokenPair, error) {
	const op = "token_service.GenerateTokens"

	accessToken, err := jwt.NewToken(s.secret, admin, jwt.AccessToken, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := jwt.NewToken(s.secret, admin, jwt.RefreshToken, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, admin.ID.String(), refreshToken, s.refreshTTL); err != nil {
		s.log.Error("failed to store refresh token", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       admin.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshTokens rotates a stored refresh token. The old one is deleted before
// the new pair is issued, so a refresh token works once.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "token_service.RefreshTokens"

	log := s.log.With(slog.String("op", op))

	claims, err := jwt.Parse(s.secret, refreshToken)
	if err != nil {
		log.Warn("rejected refresh token", sl.Err(err))
		return nil, apperr.Wrap(apperr.KindUnauthorized, "refresh token tidak valid", ErrInvalidToken)
	}
	if claims.Type != jwt.RefreshToken {
		log.Warn("rejected refresh token", slog.String("type", string(claims.Type)))
		return nil, apperr.Wrap(apperr.KindUnauthorized, "refresh token tidak valid", ErrInvalidToken)
	}

	userID := claims.UserID.String()

	exists, err := s.repo.GetRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		log.Error("failed to look up refresh token", sl.Err(err))
		return nil, apperr.Internal("gagal memeriksa refresh token", fmt.Errorf("%s: %w", op, err))
	}
	if !exists {
		return nil, apperr.Wrap(apperr.KindUnauthorized, "refresh token tidak valid", ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, userID, refreshToken); err != nil {
		log.Error("failed to delete refresh token", sl.Err(err))
		return nil, apperr.Internal("gagal memperbarui token", fmt.Errorf("%s: %w", op, err))
	}

	return s.GenerateTokens(ctx, models.Admin{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	})
}

func (s *TokenService) RevokeAll(ctx context.Context, admin models.Admin) error {
	const op = "token_service.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, admin.ID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
