package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
)

// UserDirectory holds registered users. The rest of the system mostly cares
// about Exists; registration and login are part of the outer API surface.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]*models.User
	ids   []string // insertion order
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users: make(map[string]*models.User),
	}
}

// Register creates a user. Usernames and emails are unique,
// case-insensitively.
func (s *UserDirectory) Register(req models.RegisterRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, req.Username) {
			return models.User{}, apperr.Validation("username already taken: %s", req.Username)
		}
		if strings.EqualFold(u.Email, req.Email) {
			return models.User{}, apperr.Validation("email already registered: %s", req.Email)
		}
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	s.ids = append(s.ids, u.ID)

	return *u, nil
}

// Authenticate checks a username/password pair. Plain comparison, like the
// rest of the system: session security is out of scope.
func (s *UserDirectory) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			if u.Password != password {
				return models.User{}, apperr.ErrInvalidCredentials
			}
			return *u, nil
		}
	}
	return models.User{}, apperr.ErrInvalidCredentials
}

// GetByID returns a copy of the user.
func (s *UserDirectory) GetByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, apperr.NotFound("user", id)
	}
	return *u, nil
}

// List returns all users in registration order.
func (s *UserDirectory) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.users[id])
	}
	return out
}

// Exists reports whether the user id is registered.
func (s *UserDirectory) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok
}
