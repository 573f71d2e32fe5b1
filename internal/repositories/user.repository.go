package repositories

import (
	"context"

	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) ([]User, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUser(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

// FindByEmail returns every credential record matching the email, capped
// at two. The caller treats anything but exactly one match as an
// authentication failure, so two is enough to detect ambiguity.
func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]User, error) {
	log := r.log.Function("FindByEmail")

	var users []User
	if err := r.db.SQLWithContext(ctx).
		Where("email = ?", email).
		Limit(2).
		Find(&users).Error; err != nil {
		return nil, log.Err("failed to query users by email", err)
	}

	return users, nil
}
