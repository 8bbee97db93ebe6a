// Command main runs the database seeder for Ripple.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	postsPerUser := flag.Int("posts-per-user", 8, "Maximum posts per user")
	followsPerUser := flag.Int("follows-per-user", 5, "Maximum follow edges per user")
	numActions := flag.Int("actions", 10, "Number of hide/block actions to sprinkle in")
	randomSeed := flag.Uint64("seed", 42, "Random seed for reproducible data")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fixtures := flag.String("fixtures", "", "Path to a YAML fixture file (overrides random seeding)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *fixtures != "" {
		fx, err := seed.LoadFixtures(*fixtures)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := fx.Apply(db); err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
		log.Printf("Applied fixtures from %s", *fixtures)
		return
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:       *numUsers,
		PostsPerUser:   *postsPerUser,
		FollowsPerUser: *followsPerUser,
		NumActions:     *numActions,
		Seed:           *randomSeed,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
