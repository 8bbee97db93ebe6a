package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithPostsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByIDFn          func(context.Context, uint) (*models.Post, error)
	getByUserIDFn      func(context.Context, uint, int, int) ([]*models.Post, error)
	listFn             func(context.Context, string, int, int) ([]*models.Post, error)
	listByAuthorIDsFn  func(context.Context, []uint, int, int) ([]*models.Post, error)
	countByAuthorIDsFn func(context.Context, []uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) List(ctx context.Context, author string, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, author, limit, offset)
}
func (s *postRepoStub) ListByAuthorIDs(ctx context.Context, ids []uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorIDsFn(ctx, ids, limit, offset)
}
func (s *postRepoStub) CountByAuthorIDs(ctx context.Context, ids []uint) (int64, error) {
	return s.countByAuthorIDsFn(ctx, ids)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:           func(context.Context, *models.Post) error { return nil },
		getByIDFn:          func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByUserIDFn:      func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		listFn:             func(context.Context, string, int, int) ([]*models.Post, error) { return nil, nil },
		listByAuthorIDsFn:  func(context.Context, []uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorIDsFn: func(context.Context, []uint) (int64, error) { return 0, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	upsertFn       func(context.Context, uint, uint) error
	deleteFn       func(context.Context, uint, uint) error
	existsFn       func(context.Context, uint, uint) (bool, error)
	followersFn    func(context.Context, uint) ([]models.UserSummary, error)
	followingFn    func(context.Context, uint) ([]models.UserSummary, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Upsert(ctx context.Context, followerID, followingID uint) error {
	return s.upsertFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		upsertFn:       func(context.Context, uint, uint) error { return nil },
		deleteFn:       func(context.Context, uint, uint) error { return nil },
		existsFn:       func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:    func(context.Context, uint) ([]models.UserSummary, error) { return nil, nil },
		followingFn:    func(context.Context, uint) ([]models.UserSummary, error) { return nil, nil },
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

// actionRepoStub is a stub for repository.ActionRepository.
type actionRepoStub struct {
	setFn        func(context.Context, uint, uint, models.ActionKind) error
	removeFn     func(context.Context, uint, uint) error
	getFn        func(context.Context, uint, uint) (*models.UserAction, error)
	listByUserFn func(context.Context, uint) ([]models.UserAction, error)
	targetIDsFn  func(context.Context, uint, ...models.ActionKind) ([]uint, error)
}

func (s *actionRepoStub) Set(ctx context.Context, userID, targetUserID uint, kind models.ActionKind) error {
	return s.setFn(ctx, userID, targetUserID, kind)
}
func (s *actionRepoStub) Remove(ctx context.Context, userID, targetUserID uint) error {
	return s.removeFn(ctx, userID, targetUserID)
}
func (s *actionRepoStub) Get(ctx context.Context, userID, targetUserID uint) (*models.UserAction, error) {
	return s.getFn(ctx, userID, targetUserID)
}
func (s *actionRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.UserAction, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *actionRepoStub) TargetIDs(ctx context.Context, userID uint, kinds ...models.ActionKind) ([]uint, error) {
	return s.targetIDsFn(ctx, userID, kinds...)
}

func noopActionRepo() *actionRepoStub {
	return &actionRepoStub{
		setFn:        func(context.Context, uint, uint, models.ActionKind) error { return nil },
		removeFn:     func(context.Context, uint, uint) error { return nil },
		getFn:        func(context.Context, uint, uint) (*models.UserAction, error) { return nil, nil },
		listByUserFn: func(context.Context, uint) ([]models.UserAction, error) { return nil, nil },
		targetIDsFn:  func(context.Context, uint, ...models.ActionKind) ([]uint, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "NOT_FOUND")
}

// assertSelfReferenceError asserts that err is an AppError with code SELF_REFERENCE.
func assertSelfReferenceError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "SELF_REFERENCE")
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
