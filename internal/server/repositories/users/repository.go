// Package users declares the repository contract for identity records,
// including the single authorized refresh-token slot per user.
package users

import (
	"context"

	"github.com/nsavelyev/viewtube/internal/server/models"
)

// Repository defines persistence operations on identity records.
//
// The refresh-token methods treat the token as opaque bytes: the repository
// never inspects its cryptographic content. Each write is a full overwrite
// of the single slot (last-writer-wins); the UPDATE statement itself is the
// atomicity boundary.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin resolves a user by username or email.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetRefreshToken returns the authorized refresh token for the user.
	// A missing user or an empty slot both yield common.ErrorNotFound.
	GetRefreshToken(ctx context.Context, userID string) (string, error)

	// SetRefreshToken overwrites the slot with a new value.
	SetRefreshToken(ctx context.Context, userID, refreshToken string) error

	// ClearRefreshToken empties the slot. Clearing an already-empty slot is
	// not an error.
	ClearRefreshToken(ctx context.Context, userID string) error

	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateAvatar(ctx context.Context, userID, avatarKey string) error
	UpdateCover(ctx context.Context, userID, coverKey string) error
}
