package main

import (
	"log"

	"mellowise-loader/internal/config"
	"mellowise-loader/internal/database"
)

const migrationsDir = "database/migrations"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.GetDSN(), migrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")
}
