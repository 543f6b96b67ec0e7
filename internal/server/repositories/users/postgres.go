package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/dbx"
	"github.com/nsavelyev/viewtube/internal/server/models"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.FullName, user.Role, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `
		SELECT id, username, email, full_name, role, password_hash, refresh_token, avatar_key, cover_key, created_at
		FROM users
		WHERE username = $1 OR email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, email, full_name, role, password_hash, refresh_token, avatar_key, cover_key, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetRefreshToken reads the single authorized slot. Both a missing row and a
// NULL slot map to common.ErrorNotFound so that callers cannot tell a
// logged-out user from a deleted one.
func (r *PostgresRepository) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT refresh_token
		FROM users
		WHERE id = $1
	`
	var token sql.NullString
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	if !token.Valid {
		return "", common.ErrorNotFound
	}
	return token.String, nil
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, userID, refreshToken string) error {
	query := `
		UPDATE users SET refresh_token = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, refreshToken)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users SET refresh_token = NULL
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID, passwordHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, userID, avatarKey string) error {
	query := `
		UPDATE users SET avatar_key = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID, avatarKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateCover(ctx context.Context, userID, coverKey string) error {
	query := `
		UPDATE users SET cover_key = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID, coverKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var refreshToken sql.NullString
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.Role,
		&user.PasswordHash, &refreshToken, &user.AvatarKey, &user.CoverKey, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if refreshToken.Valid {
		user.RefreshToken = &refreshToken.String
	}
	return user, nil
}
