package seed

import (
	"server/config"
	"server/internal/logger"
	. "server/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	users := []User{
		{
			Name:     "Jostyn Operador",
			Email:    "jostyn@asesorias.example",
			Password: "password",
			Role:     "admin",
		}, {
			Name:     "Ana Asesora",
			Email:    "ana@asesorias.example",
			Password: "password",
			Role:     "operador",
		},
	}

	for _, user := range users {
		var existingUser User
		if err := db.First(&existingUser, "email = ?", user.Email).Error; err == nil {
			log.Info("User already exists", "email", user.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return log.Err("failed to hash seed password", err, "email", user.Email)
		}
		user.Password = string(hash)

		log.Info("Seeding user", "email", user.Email)
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "email", user.Email)
		}
	}

	return nil
}
