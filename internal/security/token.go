package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// StaffClaims defines the claims carried by a staff access token.
type StaffClaims struct {
	StaffID    string   `json:"staff_id"`
	Email      string   `json:"email,omitempty"`
	Role       string   `json:"role"`
	Privileges []string `json:"privileges,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(staff *domain.StaffMember) (string, error)
	ValidateToken(tokenString string) (*StaffClaims, error)
}

type tokenManager struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewTokenManager(secret string, tokenExpiry time.Duration) TokenManager {
	return &tokenManager{
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

func (m *tokenManager) GenerateAccessToken(staff *domain.StaffMember) (string, error) {
	privileges := make([]string, 0, len(staff.Privileges))
	for _, p := range staff.Privileges {
		privileges = append(privileges, string(p))
	}

	claims := StaffClaims{
		StaffID:    staff.ID,
		Email:      staff.Email,
		Role:       string(staff.Role),
		Privileges: privileges,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "goodlife-gym",
			Audience:  jwt.ClaimStrings{"api-access"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Staff rebuilds a staff member's identity from validated claims. The
// result carries no profile fields beyond what the token encodes.
func (c *StaffClaims) Staff() *domain.StaffMember {
	privileges := make([]domain.Privilege, 0, len(c.Privileges))
	for _, p := range c.Privileges {
		privileges = append(privileges, domain.Privilege(p))
	}
	return &domain.StaffMember{
		ID:         c.StaffID,
		Email:      c.Email,
		Role:       domain.StaffRole(c.Role),
		Privileges: privileges,
	}
}
