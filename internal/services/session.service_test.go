package services

import (
	"context"
	"testing"

	"server/config"
	"server/internal/database"
	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *SessionService {
	return NewSessionService(database.DB{}, config.Config{
		JWTSecret:         secret,
		SessionTTLMinutes: 60,
	})
}

func testUser() User {
	return User{
		BaseModel: BaseModel{ID: 7},
		Name:      "Ana Ruiz",
		Email:     "ana@example.com",
	}
}

func TestSessionService_IssueAndVerify(t *testing.T) {
	service := testService("test-secret")
	ctx := context.Background()

	token, err := service.Issue(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := service.Verify(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, 7, session.UserID)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.NotEmpty(t, session.ID)
}

func TestSessionService_VerifyRejectsBadTokens(t *testing.T) {
	service := testService("test-secret")
	ctx := context.Background()

	token, err := service.Issue(ctx, testUser())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage token",
			token: "not.a.jwt",
		},
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "tampered payload",
			token: token[:len(token)-4] + "XXXX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestSessionService_VerifyRejectsOtherSecret(t *testing.T) {
	token, err := testService("secret-a").Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = testService("secret-b").Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_TokensDiffer(t *testing.T) {
	service := testService("test-secret")
	ctx := context.Background()

	first, err := service.Issue(ctx, testUser())
	require.NoError(t, err)
	second, err := service.Issue(ctx, testUser())
	require.NoError(t, err)

	// Each login gets its own session id, so tokens never repeat.
	assert.NotEqual(t, first, second)
}
