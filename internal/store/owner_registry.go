package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/veilvault/veilvault/internal/logger"
)

// ownerRegistry is the PostgreSQL-backed implementation of [OwnerRegistry].
type ownerRegistry struct {
	*DB
	logger *logger.Logger
}

// NewOwnerRegistry constructs an [OwnerRegistry] backed by the provided
// database connection and logger.
func NewOwnerRegistry(db *DB, logger *logger.Logger) OwnerRegistry {
	logger.Debug().Msg("creating owner registry")
	return &ownerRegistry{
		DB:     db,
		logger: logger,
	}
}

// Register stores the public key presented at first login.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrOwnerAlreadyRegistered].
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *ownerRegistry) Register(ctx context.Context, ownerAddress string, publicKey []byte) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, registerOwner, ownerAddress, publicKey)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrOwnerAlreadyRegistered
		default:
			log.Err(err).
				Str("func", "ownerRegistry.Register").
				Str("owner_address", ownerAddress).
				Msg("failed to register owner")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Info().
		Str("func", "ownerRegistry.Register").
		Str("owner_address", ownerAddress).
		Msg("owner registered")

	return nil
}

// GetPublicKey returns the registered verification key for an owner.
func (r *ownerRegistry) GetPublicKey(ctx context.Context, ownerAddress string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var publicKey []byte
	err := r.DB.retryRead(ctx, func() error {
		return r.DB.QueryRowContext(ctx, getOwnerPublicKey, ownerAddress).Scan(&publicKey)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "ownerRegistry.GetPublicKey").
			Str("owner_address", ownerAddress).
			Msg("failed to query owner public key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return publicKey, nil
}
