// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow is a directed "follower follows following" edge.
// At most one edge exists per ordered pair; self edges are rejected
// before this model ever reaches storage.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"follower"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"following"`
	CreatedAt   time.Time `json:"-"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"-"`
	Following User `gorm:"foreignKey:FollowingID" json:"-"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
