package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a stored identity. PasswordHash never leaves the server:
// handlers serialize users through response structs that omit it.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash []byte
	Name         string
	Surname      string
	Bio          string
	AvatarURL    *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
