package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// RelationshipService manages the follow graph and per-user suppression
// actions (HIDE and BLOCK). All targets are addressed by username.
type RelationshipService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	actionRepo repository.ActionRepository
}

func NewRelationshipService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	actionRepo repository.ActionRepository,
) *RelationshipService {
	return &RelationshipService{
		userRepo:   userRepo,
		followRepo: followRepo,
		actionRepo: actionRepo,
	}
}

// resolveTarget maps a username to a user, rejecting unknown names.
func (s *RelationshipService) resolveTarget(ctx context.Context, username string) (*models.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return target, nil
}

// Follow adds a follow edge toward the named user. Following someone
// already followed is a no-op; following yourself is rejected.
func (s *RelationshipService) Follow(ctx context.Context, userID uint, username string) error {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == userID {
		return models.NewSelfReferenceError("cannot follow yourself")
	}
	if err := s.followRepo.Upsert(ctx, userID, target.ID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the follow edge toward the named user. Unfollowing
// someone not followed is a no-op, which also covers unfollowing
// yourself: no self edge can exist, so the delete matches nothing.
func (s *RelationshipService) Unfollow(ctx context.Context, userID uint, username string) error {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return err
	}
	if err := s.followRepo.Delete(ctx, userID, target.ID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// SetAction records kind as the user's single action toward the named
// user, replacing any previous kind. Acting on yourself is rejected.
func (s *RelationshipService) SetAction(ctx context.Context, userID uint, username string, kind models.ActionKind) error {
	if !kind.Valid() {
		return models.NewValidationError("action must be HIDE or BLOCK")
	}
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == userID {
		return models.NewSelfReferenceError("cannot target yourself")
	}
	if err := s.actionRepo.Set(ctx, userID, target.ID, kind); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveAction clears any action toward the named user. Like Unfollow,
// it never rejects self: no action row toward yourself can exist.
func (s *RelationshipService) RemoveAction(ctx context.Context, userID uint, username string) error {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return err
	}
	if err := s.actionRepo.Remove(ctx, userID, target.ID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListActions returns all actions the user has taken, newest first.
func (s *RelationshipService) ListActions(ctx context.Context, userID uint) ([]models.UserAction, error) {
	actions, err := s.actionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return actions, nil
}

// Followers returns public profiles of the users following the named
// user. The listings are unauthenticated reads, so they carry only the
// public projection, never email or other account fields.
func (s *RelationshipService) Followers(ctx context.Context, username string) ([]models.UserSummary, error) {
	user, err := s.resolveTarget(ctx, username)
	if err != nil {
		return nil, err
	}
	users, err := s.followRepo.Followers(ctx, user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Following returns public profiles of the users the named user follows.
func (s *RelationshipService) Following(ctx context.Context, username string) ([]models.UserSummary, error) {
	user, err := s.resolveTarget(ctx, username)
	if err != nil {
		return nil, err
	}
	users, err := s.followRepo.Following(ctx, user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
