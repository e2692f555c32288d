package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario del back office.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
