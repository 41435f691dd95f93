package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/security"
)

func newAuthFixture() (*MockUserRepo, AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("auth-test-secret-auth-test-secret-xx", time.Hour, 24*time.Hour)
	return userRepo, NewAuthService(userRepo, tokens)
}

func hashFor(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 5
		}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "New Manager", "new@example.com", "+233200000000", "s3cret-pass", domain.RolePropertyManager)
		require.NoError(t, err)
		assert.Equal(t, int32(5), user.ID)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		_, _, _, err := svc.Signup(ctx, "Someone", "taken@example.com", "", "whatever", domain.RoleTenant)
		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "owner@example.com").Return(&domain.User{
			ID:           2,
			Email:        "owner@example.com",
			PasswordHash: hashFor("correct-horse"),
			Role:         domain.RoleLandlord,
			Status:       domain.UserStatusActive,
		}, nil)

		user, access, refresh, err := svc.Login(ctx, "owner@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, int32(2), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "owner@example.com").Return(&domain.User{
			ID:           2,
			PasswordHash: hashFor("correct-horse"),
			Status:       domain.UserStatusActive,
		}, nil)

		_, _, _, err := svc.Login(ctx, "owner@example.com", "wrong-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "anything")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("SuspendedAccount", func(t *testing.T) {
		userRepo, svc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "banned@example.com").Return(&domain.User{
			ID:           3,
			PasswordHash: hashFor("correct-horse"),
			Status:       domain.UserStatusSuspended,
		}, nil)

		_, _, _, err := svc.Login(ctx, "banned@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrAccountSuspended)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("auth-test-secret-auth-test-secret-xx", time.Hour, 24*time.Hour)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(4, "agent@example.com")
		require.NoError(t, err)

		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{
			ID:     4,
			Email:  "agent@example.com",
			Role:   domain.RoleAgent,
			Status: domain.UserStatusActive,
		}, nil)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleAgent), claims.Role)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		access, err := tokens.GenerateAccessToken(4, "agent@example.com", string(domain.RoleAgent))
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("SuspendedSinceIssued", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(4, "agent@example.com")
		require.NoError(t, err)

		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{
			ID:     4,
			Status: domain.UserStatusSuspended,
		}, nil)

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, ErrAccountSuspended)
	})
}
