package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/repositories"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() repositories.UserRepository {
	return &userRepository{
		users: make(map[string]models.User),
	}
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %q not found", id)}
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %q not found", username)}
}

func (r *userRepository) Create(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, &domain.ValidationError{Message: "username is required"}
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
	return &user, nil
}
