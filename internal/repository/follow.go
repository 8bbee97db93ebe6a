package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	// Upsert creates the follow edge if it does not exist yet. Re-following
	// is a no-op, the edge keeps its original creation time.
	Upsert(ctx context.Context, followerID, followingID uint) error
	Delete(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	// Followers returns public profiles of the users following userID.
	Followers(ctx context.Context, userID uint) ([]models.UserSummary, error)
	// Following returns public profiles of the users userID follows.
	Following(ctx context.Context, userID uint) ([]models.UserSummary, error)
	// FollowingIDs returns only the IDs of the users userID follows.
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Upsert(ctx context.Context, followerID, followingID uint) error {
	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	// Single-statement upsert so concurrent follows of the same pair cannot
	// race past the unique index.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(&follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// The listing queries select only the public projection columns; these
// rows are served on unauthenticated endpoints.
func (r *followRepository) Followers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.username", "users.bio", "users.avatar").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.username", "users.bio", "users.avatar").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
