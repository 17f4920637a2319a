package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/accesshub/accesshub/internal/shared"
)

type mockUserRepo struct {
	byUsername map[string]*User
	byID       map[int64]*User
	nextID     int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byUsername: make(map[string]*User),
		byID:       make(map[int64]*User),
		nextID:     1,
	}
}

func (m *mockUserRepo) Create(ctx context.Context, user User) (*User, error) {
	if _, exists := m.byUsername[user.Username]; exists {
		return nil, fmt.Errorf("%w: username already exists", shared.ErrInvalidInput)
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.byUsername[user.Username] = &user
	m.byID[user.ID] = &user
	return &user, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, ok := m.byUsername[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func newTestService() (*Service, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewService(repo, NewTokenManager("test-secret", time.Hour)), repo
}

func TestSignupDefaultsToEmployee(t *testing.T) {
	service, _ := newTestService()

	user, err := service.Signup(context.Background(), "sam", "hunter22", "")
	require.NoError(t, err)
	assert.Equal(t, shared.RoleEmployee, user.Role)
}

func TestSignupHashesPassword(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Signup(context.Background(), "sam", "hunter22", shared.RoleAdmin)
	require.NoError(t, err)

	stored := repo.byUsername["sam"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestSignupMissingFields(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Signup(context.Background(), "", "pw", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = service.Signup(context.Background(), "sam", "", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSignupUnknownRole(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Signup(context.Background(), "sam", "hunter22", shared.Role("Director"))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSignupDuplicateUsername(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Signup(context.Background(), "sam", "hunter22", "")
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), "sam", "other", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Signup(context.Background(), "dena", "hunter22", shared.RoleManager)
	require.NoError(t, err)

	token, user, err := service.Login(context.Background(), "dena", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "dena", user.Username)

	identity, err := service.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, shared.RoleManager, identity.Role)
}

func TestLoginDoesNotDistinguishFailureModes(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Signup(context.Background(), "dena", "hunter22", "")
	require.NoError(t, err)

	_, _, unknownUserErr := service.Login(context.Background(), "nobody", "hunter22")
	_, _, wrongPasswordErr := service.Login(context.Background(), "dena", "wrong")

	assert.ErrorIs(t, unknownUserErr, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, shared.ErrInvalidCredentials)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestSanitizeDropsPasswordHash(t *testing.T) {
	view := Sanitize(User{ID: 3, Username: "sam", PasswordHash: "secret-hash", Role: shared.RoleEmployee})
	assert.Equal(t, View{ID: 3, Username: "sam", Role: shared.RoleEmployee}, view)
}
