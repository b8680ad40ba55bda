// Package users holds the account model, its persistence port and the
// service implementing registration and login on top of them.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
)

// Service implements the account flows: registration (validate, hash, store)
// and login (verify credentials, mint an access token).
type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	bcryptCost                  int
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		bcryptCost:                  cfg.BcryptCost,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account for the given credentials. Every field is
// required; a taken username surfaces as common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, userName string, password string, email string) (*User, error) {
	if userName == "" || password == "" || email == "" {
		return nil, common.ErrorValidation
	}

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{UserName: userName, PasswordHash: passwordHash, Email: email}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns a fresh access token. Unknown
// usernames and wrong passwords both surface as common.ErrorUnauthorized so
// a caller cannot tell which one it was.
func (s *Service) Login(ctx context.Context, userName string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
