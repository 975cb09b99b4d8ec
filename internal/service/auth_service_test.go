package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ageful/solar-ops-api/internal/auth"
	"github.com/ageful/solar-ops-api/internal/config"
	"github.com/ageful/solar-ops-api/internal/domain"
	"github.com/ageful/solar-ops-api/internal/repository"
	"github.com/ageful/solar-ops-api/internal/testutil"
)

func newAuthServiceForTest(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.SetupTestDB(t)

	tokens, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	})
	require.NoError(t, err)

	// MinCost keeps the bcrypt rounds cheap for tests
	return NewAuthService(
		repository.NewUserRepository(db),
		tokens,
		auth.NewPasswordHasher(4),
		zap.NewNop(),
	)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest(t)

	user, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Name:     "Kenji Ito",
		Email:    "kenji@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleUser, user.Role, "role defaults to user")

	result, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email:    "kenji@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Name:     "First",
		Email:    "taken@example.com",
		Password: "password-one",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &domain.RegisterRequest{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "password-two",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Name:     "Kenji Ito",
		Email:    "kenji@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &domain.LoginRequest{
			Email:    "kenji@example.com",
			Password: "wrong-horse",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
