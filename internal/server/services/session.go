// Package services contains server-side business logic. This file implements
// SessionService, which mints access/refresh token pairs and rotates the
// single authorized refresh-token slot per user.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/dbx"
	"github.com/nsavelyev/viewtube/internal/server/config"
	"github.com/nsavelyev/viewtube/internal/server/models"
	"github.com/nsavelyev/viewtube/internal/server/repositories/repomanager"
	"github.com/nsavelyev/viewtube/internal/server/token"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionService issues and rotates token pairs:
//   - Issue: mint both tokens, then persist the refresh token as the user's
//     single authorized slot. Minting never happens after persistence.
//   - Rotate: verify the presented refresh token, compare it byte-for-byte
//     against the persisted slot, and re-issue on match.
//   - Revoke: clear the slot so no refresh token is authorized.
type SessionService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	codec         *token.Codec
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewSessionService constructs a SessionService using repositories and
// server config. Access and refresh secrets are independent.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:            db,
		repomanager:   m,
		codec:         token.NewCodec(cfg.ClockSkewTolerance),
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

// Issue mints a fresh token pair for the user and stores the refresh token in
// the user's slot, replacing whatever was there. If the slot write fails the
// whole operation fails with common.ErrPersistence and nothing is returned to
// the caller.
func (s *SessionService) Issue(ctx context.Context, user *models.User) (*TokenPair, error) {
	return s.issue(ctx, s.db, user)
}

func (s *SessionService) issue(ctx context.Context, db dbx.DBTX, user *models.User) (*TokenPair, error) {
	access, err := s.codec.Mint(user.ID, user.Role, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.codec.Mint(user.ID, "", s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(db)
	if err := repo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate exchanges a presented refresh token for a fresh pair.
//
// Outcomes, in order of detection:
//   - common.ErrRefreshInvalid: the token fails signature or lifetime checks.
//   - common.ErrUnknownSubject: the subject does not exist or has no slot
//     (for example after logout).
//   - common.ErrRefreshStale: the token verifies but no longer matches the
//     slot. The slot is cleared before returning so the still-circulating
//     descendant token is invalidated too.
//
// The slot read, compare, and overwrite run inside one transaction.
func (s *SessionService) Rotate(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.Verify(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, common.ErrRefreshInvalid
	}

	var pair *TokenPair
	var stale bool

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		stored, err := repo.GetRefreshToken(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnknownSubject
			}
			return fmt.Errorf("db error: %w", err)
		}

		if subtle.ConstantTimeCompare([]byte(refreshToken), []byte(stored)) != 1 {
			if err := repo.ClearRefreshToken(ctx, claims.UserID); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			// commit the clear, report staleness after the tx
			stale = true
			return nil
		}

		user, err := repo.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnknownSubject
			}
			return fmt.Errorf("db error: %w", err)
		}

		pair, err = s.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	if stale {
		return nil, common.ErrRefreshStale
	}
	return pair, nil
}

// Revoke clears the user's refresh-token slot. Revoking a user with no
// active session is not an error.
func (s *SessionService) Revoke(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// VerifyAccess validates an access token and returns its claims. It touches
// no state, so a revoked user's access token stays valid until it expires.
func (s *SessionService) VerifyAccess(tokenString string) (*token.Claims, error) {
	return s.codec.Verify(tokenString, s.accessSecret)
}
