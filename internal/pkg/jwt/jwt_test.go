package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"staybook/internal/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := New("test-secret", "staybook", time.Hour)

	token, err := svc.GenerateToken(42, domain.RoleHotelOwner)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleHotelOwner, claims.Role)
	assert.Equal(t, "staybook", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", "staybook", time.Hour).GenerateToken(1, domain.RoleUser)
	assert.NoError(t, err)

	_, err = New("secret-b", "staybook", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := &Service{secret: []byte("test-secret"), issuer: "staybook", ttl: -time.Minute}

	token, err := svc.GenerateToken(1, domain.RoleUser)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := New("test-secret", "staybook", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNew_DefaultTTL(t *testing.T) {
	svc := New("test-secret", "staybook", 0)

	token, err := svc.GenerateToken(1, domain.RoleUser)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(23*time.Hour)))
}
