package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)

	staff := &domain.StaffMember{
		ID:    "staff-1",
		Email: "ama@goodlifegym.com",
		Role:  domain.RoleStaff,
		Privileges: []domain.Privilege{
			domain.PrivilegeManageMembers,
			domain.PrivilegeConfirmPayments,
		},
	}

	token, err := manager.GenerateAccessToken(staff)
	assert.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", claims.StaffID)
	assert.Equal(t, "ama@goodlifegym.com", claims.Email)

	rebuilt := claims.Staff()
	assert.Equal(t, domain.RoleStaff, rebuilt.Role)
	assert.True(t, rebuilt.HasPrivilege(domain.PrivilegeConfirmPayments))
	assert.False(t, rebuilt.HasPrivilege(domain.PrivilegeManageStaff))
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewTokenManager(testSecret, -time.Minute)

	token, err := manager.GenerateAccessToken(&domain.StaffMember{ID: "staff-1"})
	assert.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestWrongSecretRejected(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("another-secret-another-secret-32", time.Hour)

	token, err := manager.GenerateAccessToken(&domain.StaffMember{ID: "staff-1"})
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
