package models

import "time"

// User represents an application user. PasswordHash always holds a
// one-way hash, never the plaintext password.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:30;uniqueIndex;not null" json:"username"`
	FirstName    string `gorm:"size:15" json:"first_name"`
	LastName     string `gorm:"size:15" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	Role         string `gorm:"size:15;default:user" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
