package users

import "context"

// Repository is the persistence port for user accounts.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
}
