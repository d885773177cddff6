package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/outstagram/outstagram-cli/internal/client/session"
	"github.com/outstagram/outstagram-cli/internal/dbx"
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// SQLiteRepository is the durable Repository implementation, one row per
// cookie entry.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) set(ctx context.Context, tx dbx.DBTX, name, value string, httpOnly bool, expiry time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cookies (name, value, path, http_only, expires) VALUES (?, ?, '/', ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, http_only = excluded.http_only, expires = excluded.expires
	`, name, value, httpOnly, expiry.Unix())
	if err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", name, err)
	}
	return nil
}

// Save writes the userinfo and logintoken entries in a single transaction so
// the pair is always set together.
func (r *SQLiteRepository) Save(ctx context.Context, user session.User, token string, expiry time.Time) error {
	value, err := encodeUserInfo(user)
	if err != nil {
		return fmt.Errorf("failed to encode userinfo: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, userInfoCookie, value, false, expiry); err != nil {
			return err
		}
		return r.set(ctx, tx, loginTokenCookie, token, true, expiry)
	})
}

func (r *SQLiteRepository) get(ctx context.Context, name string) (string, bool, error) {
	var value string
	var expires int64
	err := r.db.QueryRowContext(ctx,
		`SELECT value, expires FROM cookies WHERE name = ?`, name).Scan(&value, &expires)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get cookie[%s]: %w", name, err)
	}
	if nowFn().Unix() >= expires {
		return "", false, nil
	}
	return value, true, nil
}

// Load reads and parses the userinfo entry. Absent or unparseable data yields
// (nil, nil): a broken credential is the same as no credential. The presence
// of a logintoken is never consulted here.
func (r *SQLiteRepository) Load(ctx context.Context) (*session.User, error) {
	value, ok, err := r.get(ctx, userInfoCookie)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	user, err := decodeUserInfo(value)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

// Token returns the stored auth token, or "" when absent or expired.
func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	value, ok, err := r.get(ctx, loginTokenCookie)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// Clear removes every credential entry, including the legacy token name.
// Clearing an already-empty store is not an error.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cookies WHERE name IN (?, ?, ?)`,
		userInfoCookie, loginTokenCookie, legacyTokenCookie)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}

var _ Repository = (*SQLiteRepository)(nil)
var _ session.Loader = (*SQLiteRepository)(nil)
