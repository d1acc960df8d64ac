package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:254;not null"`
	Slug         string `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account may use the admin routes.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
