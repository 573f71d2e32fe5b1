package main

import (
	"os"

	"server/cmd/migration/initialize"
	"server/cmd/migration/seed"
	"server/config"
	"server/internal/database"
	"server/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.New("migration")

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded", "error", err.Error())
	}

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		log.Er("failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := initialize.InitializeTables(db.SQL, config, log); err != nil {
		os.Exit(1)
	}

	if config.Environment == "development" {
		if err := seed.Seed(db.SQL, config, log); err != nil {
			os.Exit(1)
		}
	}
}
