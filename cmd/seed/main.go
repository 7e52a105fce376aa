package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"user-registration-service/config"
	"user-registration-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demouser"
	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, provider, display_name)
		VALUES ($1, $2, $3, 'local', 'Demo User')
		ON CONFLICT ((lower(email))) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s email=%s password=%s\n", id, username, email, password)
}
