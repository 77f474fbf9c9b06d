package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/proclubshub/backend/config"
	"github.com/proclubshub/backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@proclubshub.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	clubs := []struct {
		name, logo, description string
	}{
		{"Red FC", "https://cdn.proclubshub.dev/logos/red-fc.png", "Founding club of the league"},
		{"Blue United", "https://cdn.proclubshub.dev/logos/blue-united.png", "Rivals since day one"},
		{"Green Rovers", "https://cdn.proclubshub.dev/logos/green-rovers.png", ""},
	}
	for _, c := range clubs {
		var id string
		if err := db.QueryRow(`
			INSERT INTO clubs (name, logo, description)
			VALUES ($1, $2, $3)
			RETURNING id
		`, c.name, c.logo, c.description).Scan(&id); err != nil {
			log.Fatalf("failed to seed club %s: %v", c.name, err)
		}
		if _, err := db.Exec(`
			INSERT INTO standings (club, points, played, won, drawn, lost,
			                       goals_for, goals_against, goal_difference)
			VALUES ($1, 0, 0, 0, 0, 0, 0, 0, 0)
		`, c.name); err != nil {
			log.Fatalf("failed to seed standing for %s: %v", c.name, err)
		}
		fmt.Printf("seeded club: id=%s name=%s\n", id, c.name)
	}
}
