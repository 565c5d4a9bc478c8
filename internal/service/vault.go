// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/zk"
	"github.com/veilvault/veilvault/models"
)

// vaultService is the private implementation of [VaultService].
type vaultService struct {
	engine   crypto.EncryptionEngine
	commits  crypto.CommitmentBuilder
	blobs    adapter.BlobStore
	ledger   adapter.AnchorLedger
	versions AnchorVersionStore
	logger   *logger.Logger
}

// NewVaultService wires the write/read path over the protocol core and the
// two external collaborators.
func NewVaultService(
	engine crypto.EncryptionEngine,
	commits crypto.CommitmentBuilder,
	blobs adapter.BlobStore,
	ledger adapter.AnchorLedger,
	versions AnchorVersionStore,
	log *logger.Logger,
) VaultService {
	return &vaultService{
		engine:   engine,
		commits:  commits,
		blobs:    blobs,
		ledger:   ledger,
		versions: versions,
		logger:   log,
	}
}

// AddItem implements [VaultService].
//
// The bundle is marshaled completely before the first network call, and the
// anchor is only written after the blob store accepted the bundle: a
// failure at any point leaves nothing half-persisted.
func (v *vaultService) AddItem(ctx context.Context, session *VaultSession, item models.PlaintextItem) (models.Anchor, models.VaultItemCipher, error) {
	if err := CheckPolicy(item.Secret); err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}

	key, err := session.Key()
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}

	digest, err := zk.SecretDigest(item.Secret)
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}

	rec, err := v.engine.Encrypt(item, key)
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, fmt.Errorf("encrypt item: %w", err)
	}
	rec.SecretHash = hex.EncodeToString(digest)

	salt, err := v.commits.NewItemSalt()
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}
	rec.ItemSalt = hex.EncodeToString(salt)

	raw, err := rec.Marshal()
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}

	locator, err := v.blobs.Put(ctx, raw)
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, fmt.Errorf("store bundle: %w", err)
	}

	commitment, err := v.commitmentFor(rec, locator)
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, err
	}

	expected := int64(0)
	if current, err := v.ledger.Read(ctx, session.Owner()); err == nil {
		expected = current.Version
	} else if !errors.Is(err, adapter.ErrNoAnchor) {
		return models.Anchor{}, models.VaultItemCipher{}, fmt.Errorf("read current anchor: %w", err)
	}

	version, err := v.ledger.Write(ctx, commitment, locator, expected)
	if err != nil {
		return models.Anchor{}, models.VaultItemCipher{}, fmt.Errorf("anchor commitment: %w", err)
	}

	if err := v.versions.Record(ctx, session.Owner(), version); err != nil {
		v.logger.Warn().Err(err).Msg("failed to record anchor version locally")
	}

	v.logger.Info().
		Str("locator", locator).
		Str("commitment", commitment).
		Int64("version", version).
		Msg("vault item anchored")

	return models.Anchor{
		OwnerAddress: session.Owner(),
		Version:      version,
		Commitment:   commitment,
		Locator:      locator,
	}, rec, nil
}

// GetItem implements [VaultService].
func (v *vaultService) GetItem(ctx context.Context, session *VaultSession) (models.PlaintextItem, models.Anchor, error) {
	anchor, err := v.ledger.Read(ctx, session.Owner())
	if err != nil {
		return models.PlaintextItem{}, models.Anchor{}, fmt.Errorf("read anchor: %w", err)
	}

	raw, err := v.blobs.Get(ctx, anchor.Locator)
	if err != nil {
		return models.PlaintextItem{}, models.Anchor{}, fmt.Errorf("fetch bundle: %w", err)
	}

	rec, err := models.UnmarshalVaultItemCipher(raw)
	if err != nil {
		return models.PlaintextItem{}, models.Anchor{}, err
	}

	key, err := session.Key()
	if err != nil {
		return models.PlaintextItem{}, models.Anchor{}, err
	}

	secret, err := v.engine.Decrypt(rec, key)
	if err != nil {
		return models.PlaintextItem{}, models.Anchor{}, err
	}

	return models.PlaintextItem{
		Site:     rec.Site,
		Username: rec.Username,
		Secret:   secret,
		Meta:     rec.Meta,
	}, anchor, nil
}

// commitmentFor recomputes the anchored commitment for a bundle stored at
// locator. Shared by the write path and the verification loop so the two
// can never drift.
func (v *vaultService) commitmentFor(rec models.VaultItemCipher, locator string) (string, error) {
	return recomputeCommitment(v.commits, rec, locator)
}

func recomputeCommitment(commits crypto.CommitmentBuilder, rec models.VaultItemCipher, locator string) (string, error) {
	salt, err := hex.DecodeString(rec.ItemSalt)
	if err != nil {
		return "", fmt.Errorf("decode item salt: %w", err)
	}
	keyHash, err := hex.DecodeString(rec.KeyHash)
	if err != nil {
		return "", fmt.Errorf("decode key hash: %w", err)
	}

	idHash, err := commits.ItemIDHash(salt, rec.Site, rec.Username)
	if err != nil {
		return "", err
	}
	commitment, err := commits.ItemCommitment(idHash, locator, keyHash)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(commitment), nil
}
