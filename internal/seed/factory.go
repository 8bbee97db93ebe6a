// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory creates randomized domain records for development databases.
type Factory struct {
	db    *gorm.DB
	faker *gofakeit.Faker
}

// NewFactory returns a Factory seeded deterministically so repeated runs
// produce the same data.
func NewFactory(db *gorm.DB, seed uint64) *Factory {
	return &Factory{
		db:    db,
		faker: gofakeit.New(int64(seed)),
	}
}

// defaultSeedPassword is the known password for all generated accounts.
const defaultSeedPassword = "Seed3d$ecretPass!"

var seedPasswordHash string

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultSeedPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	seedPasswordHash = string(hash)
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	first := strings.ToLower(f.faker.FirstName())
	last := strings.ToLower(f.faker.LastName())
	username := fmt.Sprintf("%s_%s%d", first, last, f.faker.Number(1, 9999))

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, f.faker.DomainName()),
		Password: seedPasswordHash,
		Bio:      f.faker.Sentence(8),
	}
	for _, o := range overrides {
		o(user)
	}
	return user
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// BuildPost constructs a post for the given author without persisting it.
// Generated content always fits the 280 character limit.
func (f *Factory) BuildPost(author *models.User, overrides ...func(*models.Post)) *models.Post {
	content := f.faker.Sentence(f.faker.Number(4, 24))
	if utf8.RuneCountInString(content) > models.MaxPostContentLength {
		content = string([]rune(content)[:models.MaxPostContentLength])
	}

	post := &models.Post{
		UserID:  author.ID,
		Content: content,
	}
	for _, o := range overrides {
		o(post)
	}
	return post
}

// CreatePost persists a generated post.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(author, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateFollow adds a follow edge. Duplicate edges are ignored.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	err := f.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(&models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}).Error
	if err != nil {
		return fmt.Errorf("seed follow: %w", err)
	}
	return nil
}

// CreateAction records a suppression action, replacing any earlier one
// for the same pair.
func (f *Factory) CreateAction(user, target *models.User, kind models.ActionKind) error {
	if user.ID == target.ID {
		return nil
	}
	err := f.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
	}).Create(&models.UserAction{
		UserID:       user.ID,
		TargetUserID: target.ID,
		Kind:         kind,
	}).Error
	if err != nil {
		return fmt.Errorf("seed action: %w", err)
	}
	return nil
}
