package models

import "time"

// Book is a shared catalog record, readable without authentication.
type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:80;not null" json:"title"`
	Author      string `gorm:"size:40;not null" json:"author"`
	Description string `gorm:"size:200" json:"description"`
	Category    string `gorm:"size:40;not null;index" json:"category"`
	Rating      int    `gorm:"not null" json:"rating"` // 1..5

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
