package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/accesshub/accesshub/internal/shared"
)

// Service wraps signup and login business rules.
type Service struct {
	repo   Repository
	tokens *TokenManager
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Signup registers a new account. The role defaults to Employee when empty.
// The plaintext password is hashed and never stored.
func (s *Service) Signup(ctx context.Context, username, password string, role shared.Role) (*User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}
	if role == "" {
		role = shared.RoleEmployee
	}
	if !shared.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Login validates credentials and issues a bearer token. The returned error
// does not reveal whether the username or the password was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(shared.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
