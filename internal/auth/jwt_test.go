package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ageful/solar-ops-api/internal/config"
	"github.com/ageful/solar-ops-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "Test User",
		Email:     "test@example.com",
		Role:      domain.UserRoleManager,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewTokenManager(&config.AuthConfig{JWTSecret: "secret", TokenTTLHours: 1})
	require.NoError(t, err)

	user := testUser()
	token, err := tm.Issue(user)
	require.NoError(t, err)

	userCtx, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, "test@example.com", userCtx.Email)
	assert.Equal(t, domain.UserRoleManager, userCtx.Role)
}

func TestTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager(&config.AuthConfig{})
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := &TokenManager{secret: []byte("secret"), tokenTTL: -time.Minute}

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	tm, err := NewTokenManager(&config.AuthConfig{JWTSecret: "secret-a", TokenTTLHours: 1})
	require.NoError(t, err)
	other, err := NewTokenManager(&config.AuthConfig{JWTSecret: "secret-b", TokenTTLHours: 1})
	require.NoError(t, err)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.NoError(t, hasher.Compare(hash, "hunter22"))
	assert.ErrorIs(t, hasher.Compare(hash, "hunter23"), ErrWrongPassword)
}
