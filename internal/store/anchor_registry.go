package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/models"
)

// anchorRegistry is the PostgreSQL-backed implementation of [AnchorRegistry].
// It works against the append-only "anchors" table using the embedded [*DB]
// connection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// registry interactions are traced with structured fields.
type anchorRegistry struct {
	*DB
	logger *logger.Logger
}

// NewAnchorRegistry constructs an [AnchorRegistry] backed by the provided
// database connection and logger.
func NewAnchorRegistry(db *DB, logger *logger.Logger) AnchorRegistry {
	logger.Debug().Msg("creating anchor registry")
	return &anchorRegistry{
		DB:     db,
		logger: logger,
	}
}

// GetLatest retrieves the highest-version anchor for an owner. Transient
// driver failures are retried through [DB.retryRead].
//
// Error handling:
//   - No rows → [ErrAnchorNotFound].
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *anchorRegistry) GetLatest(ctx context.Context, ownerAddress string) (models.Anchor, error) {
	log := logger.FromContext(ctx)

	var anchor models.Anchor
	err := r.DB.retryRead(ctx, func() error {
		return r.DB.QueryRowContext(ctx, getLatestAnchor, ownerAddress).Scan(
			&anchor.OwnerAddress,
			&anchor.Version,
			&anchor.Commitment,
			&anchor.Locator,
			&anchor.AnchoredAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Anchor{}, ErrAnchorNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "anchorRegistry.GetLatest").
			Str("owner_address", ownerAddress).
			Msg("failed to query latest anchor")
		return models.Anchor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return anchor, nil
}

// Append records a new anchor with compare-and-set semantics.
//
// The insert only fires while expectedVersion is still the latest for the
// owner; two writers racing on the same expectedVersion are separated by the
// (owner_address, version) unique constraint. Both losing outcomes map to
// [ErrVersionConflict].
func (r *anchorRegistry) Append(ctx context.Context, anchor models.Anchor, expectedVersion int64) (int64, error) {
	log := logger.FromContext(ctx)

	var version int64
	err := r.DB.QueryRowContext(ctx, appendAnchor,
		anchor.OwnerAddress,
		expectedVersion,
		anchor.Commitment,
		anchor.Locator,
	).Scan(&version, &anchor.AnchoredAt)

	if errors.Is(err, sql.ErrNoRows) {
		// the guarded SELECT produced nothing: expectedVersion is stale
		log.Warn().
			Str("func", "anchorRegistry.Append").
			Str("owner_address", anchor.OwnerAddress).
			Int64("expected_version", expectedVersion).
			Msg("anchor append lost compare-and-set race")
		return 0, ErrVersionConflict
	}
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().
				Str("func", "anchorRegistry.Append").
				Str("owner_address", anchor.OwnerAddress).
				Int64("expected_version", expectedVersion).
				Msg("anchor append collided on (owner, version)")
			return 0, ErrVersionConflict
		default:
			log.Err(err).
				Str("func", "anchorRegistry.Append").
				Str("owner_address", anchor.OwnerAddress).
				Msg("failed to append anchor")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Info().
		Str("func", "anchorRegistry.Append").
		Str("owner_address", anchor.OwnerAddress).
		Int64("version", version).
		Str("commitment", anchor.Commitment).
		Msg("anchor appended")

	return version, nil
}

// History returns an owner's anchors matching filter, newest first.
//
// Returns an empty slice when no anchors match; [ErrAnchorNotFound] is
// reserved for GetLatest.
func (r *anchorRegistry) History(ctx context.Context, filter models.AnchorHistoryFilter) ([]models.Anchor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAnchorHistoryQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "anchorRegistry.History").
			Str("owner_address", filter.OwnerAddress).
			Msg("failed to build history query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "anchorRegistry.History").
			Str("owner_address", filter.OwnerAddress).
			Msg("failed to execute history query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	anchors := make([]models.Anchor, 0, 16)

	for rows.Next() {
		var anchor models.Anchor

		scanErr := rows.Scan(
			&anchor.OwnerAddress,
			&anchor.Version,
			&anchor.Commitment,
			&anchor.Locator,
			&anchor.AnchoredAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "anchorRegistry.History").
				Str("owner_address", filter.OwnerAddress).
				Msg("failed to scan anchor row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		anchors = append(anchors, anchor)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "anchorRegistry.History").
			Str("owner_address", filter.OwnerAddress).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return anchors, nil
}
