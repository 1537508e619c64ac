package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/auth"
	"github.com/baladia/fuel-service/internal/repository"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(repository.NewUserRepository(db))
	svc := NewAuthService(repository.NewUserRepository(db), auth.NewManager("test-secret", time.Hour))
	ctx := context.Background()

	_, err := users.Create(ctx, writer(), UserCreateInput{
		Username: "fleet_admin",
		Password: "s3cret",
		FullName: "Fleet Admin",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "fleet_admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "fleet_admin", result.User.Username)
	require.False(t, result.User.ReadOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(repository.NewUserRepository(db))
	svc := NewAuthService(repository.NewUserRepository(db), auth.NewManager("test-secret", time.Hour))
	ctx := context.Background()

	_, err := users.Create(ctx, writer(), UserCreateInput{
		Username: "fleet_admin",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "fleet_admin", "wrong")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLoginUnknownUserAndInactive(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(repository.NewUserRepository(db))
	svc := NewAuthService(repository.NewUserRepository(db), auth.NewManager("test-secret", time.Hour))
	ctx := context.Background()

	_, err := svc.Login(ctx, "nobody", "whatever")
	require.ErrorIs(t, err, ErrUnauthenticated)

	inactive := false
	_, err = users.Create(ctx, writer(), UserCreateInput{
		Username: "retired",
		Password: "s3cret",
		Active:   &inactive,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "retired", "s3cret")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLoginShortCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), auth.NewManager("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), "ab", "s3cret")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(context.Background(), "fleet_admin", "ab")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUserPasswordStoredHashed(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	created, err := users.Create(ctx, writer(), UserCreateInput{
		Username: "fleet_admin",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", created.PasswordHash)
	require.NotEmpty(t, created.PasswordHash)
}
