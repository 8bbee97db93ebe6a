package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	PostsPerUser   int
	FollowsPerUser int
	NumActions     int
	Seed           uint64
	ShouldClean    bool
}

// Seed fills the database with a randomized social mesh: users, their
// posts, a follow graph and a sprinkle of suppression actions.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = 8
	}
	if opts.FollowsPerUser <= 0 {
		opts.FollowsPerUser = 5
	}

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing data: %w", err)
		}
	}

	f := NewFactory(db, opts.Seed)

	users := make([]*models.User, 0, opts.NumUsers)
	for range opts.NumUsers {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users (password %q)", len(users), defaultSeedPassword)

	postCount := 0
	for _, user := range users {
		n := f.faker.Number(1, opts.PostsPerUser)
		for range n {
			if _, err := f.CreatePost(user); err != nil {
				return err
			}
			postCount++
		}
	}
	log.Printf("seeded %d posts", postCount)

	for _, user := range users {
		n := f.faker.Number(1, opts.FollowsPerUser)
		for range n {
			target := users[f.faker.Number(0, len(users)-1)]
			if err := f.CreateFollow(user, target); err != nil {
				return err
			}
		}
	}

	kinds := []models.ActionKind{models.ActionHide, models.ActionBlock}
	for range opts.NumActions {
		user := users[f.faker.Number(0, len(users)-1)]
		target := users[f.faker.Number(0, len(users)-1)]
		kind := kinds[f.faker.Number(0, 1)]
		if err := f.CreateAction(user, target, kind); err != nil {
			return err
		}
	}

	log.Println("seeding complete")
	return nil
}

// clearData removes all seeded rows, children first.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.UserAction{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
