package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account. Only used for authentication; accounts are provisioned directly in the database.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

type Record struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	LastLogin    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a stored user; stored values are trusted and not re-validated.
func ReconstructUser(rec Record) *User {
	return &User{
		id:           rec.ID,
		email:        Email{value: rec.Email},
		passwordHash: rec.PasswordHash,
		role:         Role(rec.Role),
		lastLogin:    rec.LastLogin,
		isActive:     rec.IsActive,
		createdAt:    rec.CreatedAt,
		updatedAt:    rec.UpdatedAt,
	}
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = &now
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
