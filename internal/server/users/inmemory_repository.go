package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map guarded by a mutex. It backs tests
// and local runs without PostgreSQL.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byLogin map[string]User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byLogin: make(map[string]User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	r.byLogin[user.UserName] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &user, nil
}
