// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ActionKind is the kind of suppression a user applies to another user.
type ActionKind string

const (
	// ActionHide removes the target's posts from the actor's feed.
	ActionHide ActionKind = "HIDE"
	// ActionBlock removes the target's posts from the actor's feed.
	ActionBlock ActionKind = "BLOCK"
)

// Valid reports whether k is a recognized action kind.
func (k ActionKind) Valid() bool {
	return k == ActionHide || k == ActionBlock
}

// UserAction records the latest suppression intent from one user toward
// another. A single row exists per (user, target) pair; setting a new kind
// replaces the previous one (last write wins).
type UserAction struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_actions_pair" json:"user"`
	TargetUserID uint       `gorm:"not null;uniqueIndex:idx_user_actions_pair;index" json:"target_user"`
	Kind         ActionKind `gorm:"type:varchar(5);not null" json:"action"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`

	Target User `gorm:"foreignKey:TargetUserID" json:"-"`
}

// TableName specifies the table name for GORM
func (UserAction) TableName() string {
	return "user_actions"
}
