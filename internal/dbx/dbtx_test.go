package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// The tests exercise WithTx against the shape the session layer depends on:
// a users table whose refresh_token column is the single persisted slot.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, refresh_token TEXT);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM users;`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users(id, refresh_token) VALUES ('u1', NULL)`)
	require.NoError(t, err)
	return db
}

func slotValue(t *testing.T, db *sql.DB, userID string) *string {
	t.Helper()
	var v sql.NullString
	require.NoError(t, db.QueryRow(`SELECT refresh_token FROM users WHERE id = ?`, userID).Scan(&v))
	if !v.Valid {
		return nil
	}
	return &v.String
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `UPDATE users SET refresh_token = 'tok-1' WHERE id = 'u1'`)
		return err
	})
	require.NoError(t, err)

	got := slotValue(t, db, "u1")
	require.NotNil(t, got, "must commit on success")
	require.Equal(t, "tok-1", *got)
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `UPDATE users SET refresh_token = 'tok-2' WHERE id = 'u1'`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)

	require.Nil(t, slotValue(t, db, "u1"), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Nil(t, slotValue(t, db, "u1"), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `UPDATE users SET refresh_token = 'tok-3' WHERE id = 'u1'`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_ReadThenConditionalClear(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`UPDATE users SET refresh_token = 'stored' WHERE id = 'u1'`)
	require.NoError(t, err)

	// A mismatch read inside the transaction clears the slot, and the clear
	// must survive the commit.
	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		var v sql.NullString
		if err := tx.QueryRowContext(ctx, `SELECT refresh_token FROM users WHERE id = 'u1'`).Scan(&v); err != nil {
			return err
		}
		if v.String != "presented" {
			_, err := tx.ExecContext(ctx, `UPDATE users SET refresh_token = NULL WHERE id = 'u1'`)
			return err
		}
		return nil
	})
	require.NoError(t, err)
	require.Nil(t, slotValue(t, db, "u1"), "clear must be committed")
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}
