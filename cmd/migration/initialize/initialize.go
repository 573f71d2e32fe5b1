package initialize

import (
	"server/config"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	if err := db.AutoMigrate(&User{}); err != nil {
		return log.Err("failed to migrate users table", err)
	}

	log.Info("Table initialization complete")
	return nil
}
