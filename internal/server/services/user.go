// Package services contains server-side business logic. This file implements
// UserService: registration, login, session authentication and account
// maintenance.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/idgen"
	"github.com/dmitrijs2005/spende/internal/server/auth"
	"github.com/dmitrijs2005/spende/internal/server/config"
	"github.com/dmitrijs2005/spende/internal/server/models"
	"github.com/dmitrijs2005/spende/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// NewUser is a registration request.
type NewUser struct {
	Name     string
	Username string
	Password string
}

// UserUpdate carries the fields to change; nil means keep.
type UserUpdate struct {
	Name        *string
	Username    *string
	Password    *string
	OldPassword *string
}

// UserService owns accounts and session tokens.
type UserService struct {
	db               *sqlx.DB
	repomanager      repomanager.RepositoryManager
	hasher           PasswordHasher
	ids              idgen.Generator
	jwtSecret        []byte
	validityDuration time.Duration

	// dummyHash is compared against on unknown usernames so that both login
	// failures cost one hash comparison.
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sqlx.DB, m repomanager.RepositoryManager, hasher PasswordHasher, ids idgen.Generator, cfg *config.Config) (*UserService, error) {
	dummy, err := hasher.Hash("spende-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return &UserService{
		db:               db,
		repomanager:      m,
		hasher:           hasher,
		ids:              ids,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.TokenValidityDuration,
		dummyHash:        dummy,
	}, nil
}

// Register creates an account and returns it together with a fresh session
// token.
func (s *UserService) Register(ctx context.Context, in NewUser) (*models.User, string, error) {
	id, err := s.ids.NextID()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrIDGeneration, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}

	user := &models.User{ID: id, Name: in.Name, Username: in.Username, HashedPassword: hash}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords fail
// identically with common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = s.hasher.Compare(s.dummyHash, password)
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error verifying password: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a session token to the stored user. The result is
// read from storage on every call. Any failure after the token was found
// matches common.ErrInvalidToken; the underlying cause is kept for logging.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrNoToken
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s: %w", common.ErrInvalidToken, userID, err)
	}
	return user, nil
}

// Update merges upd into user and stores it. Changing the password requires
// the current one.
func (s *UserService) Update(ctx context.Context, user *models.User, upd UserUpdate) (*models.User, error) {
	updated := *user

	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.Username != nil {
		updated.Username = *upd.Username
	}

	if upd.Password != nil {
		if upd.OldPassword == nil {
			return nil, common.ErrOldPasswordRequired
		}
		if err := s.hasher.Compare(user.HashedPassword, *upd.OldPassword); err != nil {
			if errors.Is(err, ErrPasswordMismatch) {
				return nil, common.ErrInvalidOldPassword
			}
			return nil, fmt.Errorf("error verifying password: %w", err)
		}
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrHashing, err)
		}
		updated.HashedPassword = hash
	}

	u, err := s.repomanager.Users(s.db).Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return u, nil
}

// Delete removes the account; its wallets go with it.
func (s *UserService) Delete(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.repomanager.Users(s.db).Delete(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return user, nil
}

// TokenValidity is the lifetime of issued tokens; the session cookie uses
// the same Max-Age.
func (s *UserService) TokenValidity() time.Duration {
	return s.validityDuration
}

func (s *UserService) generateToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.validityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}
