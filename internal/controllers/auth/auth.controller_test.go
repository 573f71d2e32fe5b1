package authController

import (
	"context"
	"errors"
	"testing"

	"server/config"
	"server/internal/database"
	. "server/internal/models"
	"server/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []User
	err   error
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) ([]User, error) {
	return f.users, f.err
}

func testSessions(t *testing.T) *services.SessionService {
	t.Helper()
	return services.NewSessionService(database.DB{}, config.Config{
		JWTSecret:         "test-secret",
		SessionTTLMinutes: 60,
	})
}

func hashedUser(t *testing.T, password string) User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return User{
		BaseModel: BaseModel{ID: 7},
		Name:      "Ana Ruiz",
		Email:     "ana@example.com",
		Password:  string(hash),
		Role:      "operador",
	}
}

func TestLogin_Success(t *testing.T) {
	user := hashedUser(t, "secreto")
	controller := New(&fakeUserRepo{users: []User{user}}, testSessions(t))

	authenticated, token, err := controller.Login(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)

	assert.Equal(t, 7, authenticated.ID)
	assert.Equal(t, "Ana Ruiz", authenticated.Name)
	assert.NotEmpty(t, token)
}

func TestLogin_Failures(t *testing.T) {
	user := hashedUser(t, "secreto")

	tests := []struct {
		name     string
		users    []User
		password string
	}{
		{
			name:     "no matching user",
			users:    nil,
			password: "secreto",
		},
		{
			name:     "ambiguous email match",
			users:    []User{user, user},
			password: "secreto",
		},
		{
			name:     "wrong password",
			users:    []User{user},
			password: "incorrecto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := New(&fakeUserRepo{users: tt.users}, testSessions(t))

			// Every failure mode collapses into the same error so the
			// caller cannot probe which part was wrong.
			_, _, err := controller.Login(context.Background(), "ana@example.com", tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_RepositoryErrorIsNotInvalidCredentials(t *testing.T) {
	controller := New(&fakeUserRepo{err: errors.New("connection refused")}, testSessions(t))

	_, _, err := controller.Login(context.Background(), "ana@example.com", "secreto")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TokenVerifies(t *testing.T) {
	user := hashedUser(t, "secreto")
	sessions := testSessions(t)
	controller := New(&fakeUserRepo{users: []User{user}}, sessions)

	_, token, err := controller.Login(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)

	session, err := sessions.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 7, session.UserID)
	assert.Equal(t, "ana@example.com", session.Email)
}
