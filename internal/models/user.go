package models

import (
	"time"
)

type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserInput holds data for creating a user account
type UserInput struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone"`
}

// UserUpdateInput holds a partial user update; an empty password is
// left untouched, a non-empty one is re-hashed before storage.
type UserUpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// User roles
const (
	RoleWorker     = "worker"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// ValidRole reports whether r is a known role
func ValidRole(r string) bool {
	switch r {
	case RoleWorker, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
