package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"

	"github.com/aniketphatak/jobbot/backend/config"
	"github.com/aniketphatak/jobbot/backend/internal/database"
)

// Creates the database if it does not exist, then runs schema migration.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := ensureDatabase(cfg); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}

// ensureDatabase connects to the maintenance database and creates the
// target database when missing.
func ensureDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// Identifiers cannot be parameterized; the name comes from config, not
	// user input, but quote it anyway.
	quoted := `"` + strings.ReplaceAll(cfg.DBName, `"`, `""`) + `"`
	if _, err := db.Exec("CREATE DATABASE " + quoted); err != nil {
		return err
	}
	log.Printf("Created database %s", cfg.DBName)
	return nil
}
