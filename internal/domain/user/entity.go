package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // full dashboard access, can mutate roster and rules
	RoleStaff Role = "staff" // read-only dashboard access
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	PhotoURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
