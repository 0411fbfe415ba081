package jwt

import (
	"errors"
	"fmt"
	"time"

	"cabdin/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrTokenExpired  = errors.New("token expired")
)

type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
	Type   TokenType
}

// NewToken signs an HS256 token for admin. Every token carries a fresh jti so
// two tokens issued within the same second still differ.
func NewToken(secret string, admin models.Admin, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   admin.ID.String(),
		"email": admin.Email,
		"role":  string(admin.Role),
		"typ":   string(typ),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return FromMapClaims(mc)
}

func FromMapClaims(mc jwt.MapClaims) (Claims, error) {
	sub, err := mc.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, ErrInvalidClaims
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Claims{}, ErrInvalidClaims
	}

	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	typ, _ := mc["typ"].(string)

	return Claims{
		UserID: id,
		Email:  email,
		Role:   models.Role(role),
		Type:   TokenType(typ),
	}, nil
}
