package entity

import (
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// User represents a back-office user profile as persisted in the session
// store.
type User struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Role     enum.UserRole `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == enum.RoleAdmin
}
