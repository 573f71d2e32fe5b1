package authController

import (
	"context"
	"errors"

	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure every login problem maps
// to. Absent user, ambiguous email, and wrong password are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthController struct {
	userRepo repositories.UserRepository
	sessions *services.SessionService
	log      logger.Logger
}

func New(userRepo repositories.UserRepository, sessions *services.SessionService) *AuthController {
	return &AuthController{
		userRepo: userRepo,
		sessions: sessions,
		log:      logger.New("AuthController"),
	}
}

// Login verifies the credentials and returns the user with a fresh
// session token.
func (c *AuthController) Login(ctx context.Context, email, password string) (*User, string, error) {
	log := c.log.Function("Login")

	users, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if len(users) != 1 {
		log.Warn("login rejected", "email", email, "matches", len(users))
		return nil, "", ErrInvalidCredentials
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Warn("login rejected", "email", email, "matches", 1)
		return nil, "", ErrInvalidCredentials
	}

	token, err := c.sessions.Issue(ctx, user)
	if err != nil {
		return nil, "", err
	}

	log.Info("user authenticated", "userID", user.ID)
	return &user, token, nil
}
