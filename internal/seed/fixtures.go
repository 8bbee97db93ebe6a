package seed

import (
	"fmt"
	"os"

	"ripple/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures is a declarative seed set loaded from YAML. It is meant for
// demo environments where the exact graph matters, unlike the random
// mesh Seed produces.
type Fixtures struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser declares one account plus its outgoing relationships.
type FixtureUser struct {
	Username string   `yaml:"username"`
	Email    string   `yaml:"email"`
	Bio      string   `yaml:"bio"`
	Posts    []string `yaml:"posts"`
	Follows  []string `yaml:"follows"`
	Hides    []string `yaml:"hides"`
	Blocks   []string `yaml:"blocks"`
}

// LoadFixtures parses a YAML fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return &fx, nil
}

// Apply inserts the fixture set. Users are created first so follows and
// actions can reference any declared username.
func (fx *Fixtures) Apply(db *gorm.DB) error {
	f := NewFactory(db, 0)

	byName := make(map[string]*models.User, len(fx.Users))
	for _, fu := range fx.Users {
		email := fu.Email
		if email == "" {
			email = fu.Username + "@example.com"
		}
		user, err := f.CreateUser(func(u *models.User) {
			u.Username = fu.Username
			u.Email = email
			u.Bio = fu.Bio
		})
		if err != nil {
			return err
		}
		byName[fu.Username] = user
	}

	resolve := func(name string) (*models.User, error) {
		user, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("fixture references unknown user %q", name)
		}
		return user, nil
	}

	for _, fu := range fx.Users {
		user := byName[fu.Username]

		for _, content := range fu.Posts {
			if _, err := f.CreatePost(user, func(p *models.Post) {
				p.Content = content
			}); err != nil {
				return err
			}
		}

		for _, name := range fu.Follows {
			target, err := resolve(name)
			if err != nil {
				return err
			}
			if err := f.CreateFollow(user, target); err != nil {
				return err
			}
		}

		for _, name := range fu.Hides {
			target, err := resolve(name)
			if err != nil {
				return err
			}
			if err := f.CreateAction(user, target, models.ActionHide); err != nil {
				return err
			}
		}

		for _, name := range fu.Blocks {
			target, err := resolve(name)
			if err != nil {
				return err
			}
			if err := f.CreateAction(user, target, models.ActionBlock); err != nil {
				return err
			}
		}
	}

	return nil
}
