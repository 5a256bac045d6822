package domain

import (
	"errors"
	"time"
)

// User is the registrable identity: email key, credential hash, numeric id.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	DateOfBirth  *time.Time
	Gender       string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Validate validates the user for persistence. Returns an error describing
// the first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if u.Role == "" {
		u.Role = RolePatient
	}
	return nil
}
