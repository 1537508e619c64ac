package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/baladia/fuel-service/internal/auth"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users *repository.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type LoginResult struct {
	Token string          `json:"token"`
	User  model.Principal `json:"user"`
}

// Login verifies the credentials against the active user set and issues an
// access token. Both an unknown username and a wrong password come back as
// ErrUnauthenticated; the distinction is not surfaced to the client.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if len(username) < 3 {
		return nil, invalid("username must be at least 3 characters")
	}
	if len(password) < 3 {
		return nil, invalid("password must be at least 3 characters")
	}

	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(fromStore(err), ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fromStore(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}

	principal := model.Principal{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Active:   user.Active,
		ReadOnly: user.ReadOnly,
	}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return nil, fromStore(err)
	}
	return &LoginResult{Token: token, User: principal}, nil
}
