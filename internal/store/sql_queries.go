// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/veilvault/veilvault/models"
)

const (
	getLatestAnchor = `SELECT owner_address, version, commitment, locator, anchored_at
	FROM anchors
	WHERE owner_address = $1
	ORDER BY version DESC
	LIMIT 1;`

	// appendAnchor inserts version expected+1 only while expected is still
	// the latest version for the owner (0 rows yet counts as expected 0).
	// Losing the race yields either no row (checked_version empty) or a
	// unique violation on (owner_address, version) — both are version
	// conflicts.
	appendAnchor = `WITH current AS (
		SELECT COALESCE(MAX(version), 0) AS version
		FROM anchors
		WHERE owner_address = $1
	), checked_version AS (
		SELECT version FROM current WHERE version = $2
	)
	INSERT INTO anchors (owner_address, version, commitment, locator, anchored_at)
	SELECT $1, version + 1, $3, $4, NOW()
	FROM checked_version
	RETURNING version, anchored_at;`

	registerOwner = `INSERT INTO owners (owner_address, public_key)
	VALUES ($1, $2);`

	getOwnerPublicKey = `SELECT public_key
	FROM owners
	WHERE owner_address = $1;`
)

// buildAnchorHistoryQuery dynamically builds the owner history SELECT from
// the filter's optional parts.
func buildAnchorHistoryQuery(filter models.AnchorHistoryFilter) (string, []any, error) {
	if filter.OwnerAddress == "" {
		return "", nil, fmt.Errorf("%w: owner address is required", ErrBuildingSQLQuery)
	}

	builder := sq.Select("owner_address", "version", "commitment", "locator", "anchored_at").
		From("anchors").
		Where(sq.Eq{"owner_address": filter.OwnerAddress}).
		OrderBy("version DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.SinceVersion > 0 {
		builder = builder.Where(sq.Gt{"version": filter.SinceVersion})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
