package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
)

func registerUser(t *testing.T, s *UserDirectory, username, email string) models.User {
	t.Helper()
	u, err := s.Register(models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret",
		FullName: "Test User",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterAndGet(t *testing.T) {
	s := NewUserDirectory()
	u := registerUser(t, s, "alice", "alice@example.com")

	got, err := s.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, s.Exists(u.ID))
	assert.False(t, s.Exists("missing"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := NewUserDirectory()
	registerUser(t, s, "alice", "alice@example.com")

	_, err := s.Register(models.RegisterRequest{
		Username: "ALICE", Email: "other@example.com", Password: "x", FullName: "A",
	})
	var invalid *apperr.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewUserDirectory()
	registerUser(t, s, "alice", "alice@example.com")

	_, err := s.Register(models.RegisterRequest{
		Username: "bob", Email: "Alice@Example.com", Password: "x", FullName: "B",
	})
	var invalid *apperr.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestAuthenticate(t *testing.T) {
	s := NewUserDirectory()
	registerUser(t, s, "alice", "alice@example.com")

	u, err := s.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = s.Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestUserListOrder(t *testing.T) {
	s := NewUserDirectory()
	a := registerUser(t, s, "alice", "alice@example.com")
	b := registerUser(t, s, "bob", "bob@example.com")

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestGetByIDUnknownUser(t *testing.T) {
	s := NewUserDirectory()
	_, err := s.GetByID("missing")
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Resource)
}
