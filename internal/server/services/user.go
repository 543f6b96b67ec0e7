package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/server/models"
	"github.com/nsavelyev/viewtube/internal/server/repositories/repomanager"
)

// UserService handles account management: registration, credential checks,
// and profile updates. Session issuance lives in SessionService.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// username or email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, fullName, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Role:         "user",
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password for the user identified by username or email.
// Both an unknown login and a wrong password yield common.ErrorUnauthorized,
// so callers cannot tell which accounts exist.
func (s *UserService) Login(ctx context.Context, login, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// ChangePassword replaces the user's password after verifying the old one.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return common.ErrorUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}
	if err := repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// UpdateAvatar records the storage key of an uploaded avatar object.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarKey string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateAvatar(ctx, userID, avatarKey); err != nil {
		return fmt.Errorf("error updating avatar: %w", err)
	}
	return nil
}

// UpdateCover records the storage key of an uploaded profile cover object.
func (s *UserService) UpdateCover(ctx context.Context, userID, coverKey string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateCover(ctx, userID, coverKey); err != nil {
		return fmt.Errorf("error updating cover: %w", err)
	}
	return nil
}
