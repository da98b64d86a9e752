package models

import "time"

// Todo is a per-user task item. UserID is the owning user; every
// non-admin read or write must be constrained by it at query time.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255;not null" json:"description"`
	Priority    int    `gorm:"not null" json:"priority"` // 1 = low, 5 = high
	Complete    bool   `gorm:"default:false" json:"complete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
