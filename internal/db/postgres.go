package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ADMINS
	// -------------------------------
	adminTableSQL := `
		CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'EDITOR',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, adminTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PACKAGES
	// -------------------------------
	packagesSQL := `
		CREATE TABLE IF NOT EXISTS packages (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			duration_days INT NOT NULL,
			meals_per_day INT NOT NULL,
			plan_pattern VARCHAR(50) NOT NULL,
			serves_min INT NOT NULL DEFAULT 1,
			serves_max INT NOT NULL DEFAULT 1,
			price_cents INT NOT NULL,
			features TEXT[] NOT NULL DEFAULT '{}',
			sort_order INT NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, packagesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEALS
	// -------------------------------
	mealsSQL := `
		CREATE TABLE IF NOT EXISTS meals (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			diet_tags TEXT[] NOT NULL DEFAULT '{}',
			protein_tags TEXT[] NOT NULL DEFAULT '{}',
			ingredient_tags TEXT[] NOT NULL DEFAULT '{}'
		)
	`
	if _, err := db.Exec(ctx, mealsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SITE SETTINGS
	// -------------------------------
	settingsSQL := `
		CREATE TABLE IF NOT EXISTS site_settings (
			key VARCHAR(100) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, settingsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
