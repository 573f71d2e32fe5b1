package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"server/config"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidSession covers every verification failure: bad signature,
// expired token, malformed claims, revoked session.
var ErrInvalidSession = errors.New("invalid session")

// Session is the cached record backing one issued token.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionService issues and verifies signed session tokens. Tokens are
// HS256 JWTs; each one also gets a session record in the cache so it can
// be revoked before expiry. A missing cache degrades to stateless JWTs.
type SessionService struct {
	cache  database.CacheClient
	secret []byte
	ttl    time.Duration
	log    logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	return &SessionService{
		cache:  db.Cache.Session,
		secret: []byte(config.JWTSecret),
		ttl:    time.Duration(config.SessionTTLMinutes) * time.Minute,
		log:    logger.New("SessionService"),
	}
}

// Issue signs a token for the authenticated user and records the session
// in the cache. A cache failure is logged but does not fail the login.
func (s *SessionService) Issue(ctx context.Context, user User) (string, error) {
	log := s.log.Function("Issue")

	now := time.Now()
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(user.ID),
		"email": user.Email,
		"jti":   sessionID,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign session token", err, "userID", user.ID)
	}

	if s.cache != nil {
		session := Session{
			ID:        sessionID,
			UserID:    user.ID,
			Email:     user.Email,
			ExpiresAt: now.Add(s.ttl),
		}
		if err := database.NewCacheBuilder(s.cache, sessionKey(sessionID)).
			WithStruct(session).
			WithTTL(s.ttl).
			WithContext(ctx).
			Set(); err != nil {
			log.Warn("failed to cache session record", "sessionID", sessionID, "error", err)
		}
	}

	return signed, nil
}

// Verify parses and validates a token and returns its session. When the
// cache is available the session record must still exist, which is what
// makes Revoke effective before expiry.
func (s *SessionService) Verify(ctx context.Context, token string) (*Session, error) {
	log := s.log.Function("Verify")

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	sub, _ := claims["sub"].(string)
	sessionID, _ := claims["jti"].(string)
	userID, err := strconv.Atoi(sub)
	if err != nil || sessionID == "" {
		return nil, ErrInvalidSession
	}

	if s.cache != nil {
		var session Session
		found, err := database.NewCacheBuilder(s.cache, sessionKey(sessionID)).
			WithContext(ctx).
			Get(&session)
		if err != nil {
			return nil, log.Err("failed to read session record", err, "sessionID", sessionID)
		}
		if !found {
			return nil, ErrInvalidSession
		}
		return &session, nil
	}

	email, _ := claims["email"].(string)
	return &Session{ID: sessionID, UserID: userID, Email: email}, nil
}

// Revoke drops the cached session record so the token stops verifying.
func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	if s.cache == nil {
		return nil
	}

	if err := database.NewCacheBuilder(s.cache, sessionKey(sessionID)).
		WithContext(ctx).
		Delete(); err != nil {
		return s.log.Function("Revoke").
			Err("failed to delete session record", err, "sessionID", sessionID)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
