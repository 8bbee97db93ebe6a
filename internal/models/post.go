// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MaxPostContentLength is the maximum post length in runes.
const MaxPostContentLength = 280

// Post represents a published message. Posts are immutable once created;
// they are only removed by referential cleanup when the author is deleted.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"type:varchar(280)" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
