package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActionRepository defines the interface for user suppression actions
type ActionRepository interface {
	// Set records kind as the single action from userID toward targetUserID,
	// replacing any previous kind (last write wins).
	Set(ctx context.Context, userID, targetUserID uint, kind models.ActionKind) error
	// Remove deletes the action for the pair. Removing a missing action is
	// not an error.
	Remove(ctx context.Context, userID, targetUserID uint) error
	Get(ctx context.Context, userID, targetUserID uint) (*models.UserAction, error)
	// ListByUser returns all actions taken by userID, target users preloaded.
	ListByUser(ctx context.Context, userID uint) ([]models.UserAction, error)
	// TargetIDs returns the IDs of users userID has applied any of the given
	// kinds to. With no kinds it matches every action.
	TargetIDs(ctx context.Context, userID uint, kinds ...models.ActionKind) ([]uint, error)
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Set(ctx context.Context, userID, targetUserID uint, kind models.ActionKind) error {
	action := models.UserAction{
		UserID:       userID,
		TargetUserID: targetUserID,
		Kind:         kind,
	}
	// One row per pair; a second SET overwrites the kind atomically.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
		}).
		Create(&action).Error
}

func (r *actionRepository) Remove(ctx context.Context, userID, targetUserID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", userID, targetUserID).
		Delete(&models.UserAction{}).Error
}

func (r *actionRepository) Get(ctx context.Context, userID, targetUserID uint) (*models.UserAction, error) {
	var action models.UserAction
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", userID, targetUserID).
		First(&action).Error
	if err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserAction, error) {
	var actions []models.UserAction
	err := readDB(r.db).WithContext(ctx).
		Preload("Target").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&actions).Error
	return actions, err
}

func (r *actionRepository) TargetIDs(ctx context.Context, userID uint, kinds ...models.ActionKind) ([]uint, error) {
	query := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Where("user_id = ?", userID)
	if len(kinds) > 0 {
		query = query.Where("kind IN ?", kinds)
	}

	var ids []uint
	err := query.Pluck("target_user_id", &ids).Error
	return ids, err
}
