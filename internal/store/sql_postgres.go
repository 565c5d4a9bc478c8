package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/veilvault/veilvault/internal/config"
	"github.com/veilvault/veilvault/internal/logger"
)

const (
	maxOpenConns   = 10
	maxIdleConns   = 4
	readRetries    = 2
	readRetryDelay = 50 * time.Millisecond
)

// DB wraps the pgx stdlib pool together with the error classifier the
// registries use to decide whether a failed read is worth repeating.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("cannot open anchor registry database")
		return nil, fmt.Errorf("open anchor registry database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("anchor registry database is unreachable")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("anchor registry database connected")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// retryRead runs op, repeating it a bounded number of times while the
// classifier reports the failure as transient. Writes never go through here;
// the compare-and-set append must observe every conflict exactly once.
func (db *DB) retryRead(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(readRetries, retry.NewConstant(readRetryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op()
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
