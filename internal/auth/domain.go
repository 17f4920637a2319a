package auth

import (
	"time"

	"github.com/accesshub/accesshub/internal/shared"
)

// User represents a user account with login credentials.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         shared.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View is the caller-visible projection of a user. It never carries the
// password hash.
type View struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     shared.Role `json:"role"`
}

// Sanitize projects a user into its caller-visible view.
func Sanitize(u User) View {
	return View{ID: u.ID, Username: u.Username, Role: u.Role}
}
