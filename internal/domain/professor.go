package domain

import "time"

// Role is the caller's role as asserted by the identity provider.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// Professor is a directory entry students browse when booking.
type Professor struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
