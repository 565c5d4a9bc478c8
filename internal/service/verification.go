// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/models"
)

// VerificationState is a step of the verification run. States advance
// strictly forward; a run ends in StateVerified or StateRejected.
type VerificationState string

const (
	StateFetching           VerificationState = "fetching"
	StateRecomputing        VerificationState = "recomputing"
	StateProvingOrVerifying VerificationState = "proving_or_verifying"
	StateComparing          VerificationState = "comparing"
	StateVerified           VerificationState = "verified"
	StateRejected           VerificationState = "rejected"
)

// RejectReason is the fixed vocabulary of rejection causes. Every rejected
// run carries exactly one of these.
type RejectReason string

const (
	ReasonNone               RejectReason = ""
	ReasonStorageUnavailable RejectReason = "storage_unavailable"
	ReasonMalformedBundle    RejectReason = "malformed_bundle"
	ReasonIntegrityFailed    RejectReason = "integrity_failed"
	ReasonVerifierFault      RejectReason = "verifier_fault"
	ReasonCommitmentMismatch RejectReason = "commitment_mismatch"
	ReasonRollbackDetected   RejectReason = "rollback_detected"
)

// VerificationReport is the outcome of one verification run.
type VerificationReport struct {
	State  VerificationState
	Reason RejectReason
	Anchor models.Anchor
}

// Verified reports whether the run ended in the accepting state.
func (r VerificationReport) Verified() bool { return r.State == StateVerified }

// VerificationService re-derives every claim about the anchored bundle from
// scratch and accepts only if all of them hold. A run never mutates the
// vault, so repeating it yields the same verdict.
type VerificationService struct {
	engine    crypto.EncryptionEngine
	commits   crypto.CommitmentBuilder
	blobs     adapter.BlobStore
	ledger    adapter.AnchorLedger
	versions  AnchorVersionStore
	integrity IntegrityProofService
	retries   uint64
	logger    *logger.Logger
}

// NewVerificationService constructs a [VerificationService]. fetchRetries
// bounds the backoff loop around transient storage failures.
func NewVerificationService(
	engine crypto.EncryptionEngine,
	commits crypto.CommitmentBuilder,
	blobs adapter.BlobStore,
	ledger adapter.AnchorLedger,
	versions AnchorVersionStore,
	integrity IntegrityProofService,
	fetchRetries uint64,
	log *logger.Logger,
) *VerificationService {
	if fetchRetries == 0 {
		fetchRetries = 4
	}
	return &VerificationService{
		engine:    engine,
		commits:   commits,
		blobs:     blobs,
		ledger:    ledger,
		versions:  versions,
		integrity: integrity,
		retries:   fetchRetries,
		logger:    log,
	}
}

// Verify runs the full state machine for the session owner's latest anchor.
//
// A non-nil error means the run itself could not complete (context expired,
// local state store broken); a completed run always returns a report, and a
// failed check is a StateRejected report, not an error.
func (s *VerificationService) Verify(ctx context.Context, session *VaultSession) (VerificationReport, error) {
	owner := session.Owner()
	log := &logger.Logger{Logger: s.logger.With().Str("owner", owner).Logger()}

	// Fetching: anchor first, then the bundle it points at. Only transient
	// storage trouble is retried; a missing blob will stay missing.
	log.Debug().Str("state", string(StateFetching)).Msg("verification step")

	anchor, raw, reason, err := s.fetch(ctx, owner)
	if err != nil {
		return VerificationReport{}, err
	}
	if reason != ReasonNone {
		return s.reject(log, anchor, reason), nil
	}

	// Recomputing: parse the bundle and re-derive the commitment from its
	// fields and the anchored locator.
	log.Debug().Str("state", string(StateRecomputing)).Msg("verification step")

	rec, err := models.UnmarshalVaultItemCipher(raw)
	if err != nil {
		return s.reject(log, anchor, ReasonMalformedBundle), nil
	}

	commitment, err := recomputeCommitment(s.commits, rec, anchor.Locator)
	if err != nil {
		return s.reject(log, anchor, ReasonMalformedBundle), nil
	}

	storedHash, err := hex.DecodeString(rec.SecretHash)
	if err != nil {
		return s.reject(log, anchor, ReasonMalformedBundle), nil
	}

	// ProvingOrVerifying: decrypt with the session key and prove the
	// plaintext against the committed digest end to end.
	log.Debug().Str("state", string(StateProvingOrVerifying)).Msg("verification step")

	key, err := session.Key()
	if err != nil {
		return VerificationReport{}, err
	}
	secret, err := s.engine.Decrypt(rec, key)
	if err != nil {
		return s.reject(log, anchor, ReasonIntegrityFailed), nil
	}
	defer crypto.Zero(secret)

	proof, err := s.integrity.Prove(ctx, secret, storedHash)
	switch {
	case errors.Is(err, ErrIntegrityMismatch):
		return s.reject(log, anchor, ReasonIntegrityFailed), nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return VerificationReport{}, err
	case err != nil:
		return s.reject(log, anchor, ReasonVerifierFault), nil
	}

	ok, err := s.integrity.Verify(proof, storedHash)
	if err != nil {
		return s.reject(log, anchor, ReasonVerifierFault), nil
	}
	if !ok {
		return s.reject(log, anchor, ReasonIntegrityFailed), nil
	}

	// Comparing: the recomputed commitment must equal the anchored one,
	// and the anchor version must not have gone backwards.
	log.Debug().Str("state", string(StateComparing)).Msg("verification step")

	if commitment != anchor.Commitment {
		return s.reject(log, anchor, ReasonCommitmentMismatch), nil
	}

	last, seen, err := s.versions.LastSeen(ctx, owner)
	if err != nil {
		return VerificationReport{}, err
	}
	if seen && anchor.Version < last {
		return s.reject(log, anchor, ReasonRollbackDetected), nil
	}
	if err := s.versions.Record(ctx, owner, anchor.Version); err != nil {
		log.Warn().Err(err).Msg("failed to record verified anchor version")
	}

	log.Info().Int64("version", anchor.Version).Msg("vault item verified")
	return VerificationReport{State: StateVerified, Anchor: anchor}, nil
}

// fetch reads the anchor and its bundle, retrying transient storage errors
// with capped exponential backoff. A terminal fetch failure comes back as a
// reject reason; ctx errors abort the run.
func (s *VerificationService) fetch(ctx context.Context, owner string) (models.Anchor, []byte, RejectReason, error) {
	var anchor models.Anchor
	var raw []byte

	backoff := retry.WithMaxRetries(s.retries, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		anchor, err = s.ledger.Read(ctx, owner)
		if err != nil {
			if errors.Is(err, adapter.ErrChainUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		raw, err = s.blobs.Get(ctx, anchor.Locator)
		if err != nil {
			if errors.Is(err, adapter.ErrStorageUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return models.Anchor{}, nil, ReasonNone, ctx.Err()
		}
		// ErrNotFound included: an anchored locator with no bytes behind
		// it means the store lost or never had the bundle.
		return anchor, nil, ReasonStorageUnavailable, nil
	}
	return anchor, raw, ReasonNone, nil
}

func (s *VerificationService) reject(log *logger.Logger, anchor models.Anchor, reason RejectReason) VerificationReport {
	log.Info().Str("reason", string(reason)).Msg("vault item rejected")
	return VerificationReport{State: StateRejected, Reason: reason, Anchor: anchor}
}
