package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/veilvault/veilvault/internal/logger"
)

const (
	createAnchorWatermarks = `CREATE TABLE IF NOT EXISTS anchor_watermarks (
		owner_address TEXT PRIMARY KEY,
		last_version  INTEGER NOT NULL
	);`

	getAnchorWatermark = `SELECT last_version
	FROM anchor_watermarks
	WHERE owner_address = ?;`

	// the upsert only ever raises the watermark
	recordAnchorWatermark = `INSERT INTO anchor_watermarks (owner_address, last_version)
	VALUES (?, ?)
	ON CONFLICT(owner_address) DO UPDATE
	SET last_version = excluded.last_version
	WHERE excluded.last_version > anchor_watermarks.last_version;`
)

// ClientStateStore is the SQLite-backed local state of the vault CLI. It
// records the highest anchor version the client has observed per owner, so
// rollback detection survives process restarts and device reboots.
type ClientStateStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewClientStateStore opens (creating if absent) the SQLite file at path and
// ensures the schema exists. An empty path keeps the state in memory, which
// is what tests use.
func NewClientStateStore(ctx context.Context, path string, log *logger.Logger) (*ClientStateStore, error) {
	dsn := ":memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
		dsn = path
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client state database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createAnchorWatermarks); err != nil {
		db.Close()
		return nil, fmt.Errorf("create anchor watermark table: %w", err)
	}

	log.Debug().Str("path", dsn).Msg("client state store opened")
	return &ClientStateStore{db: db, logger: log}, nil
}

// LastSeen returns the recorded watermark for an owner and whether one
// exists.
func (s *ClientStateStore) LastSeen(ctx context.Context, ownerAddress string) (int64, bool, error) {
	var version int64
	err := s.db.QueryRowContext(ctx, getAnchorWatermark, ownerAddress).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return version, true, nil
}

// Record raises the owner's watermark to version. Lower versions are
// ignored, never an error: the watermark is monotone by construction.
func (s *ClientStateStore) Record(ctx context.Context, ownerAddress string, version int64) error {
	if _, err := s.db.ExecContext(ctx, recordAnchorWatermark, ownerAddress, version); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *ClientStateStore) Close() error {
	return s.db.Close()
}
