// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/mock"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/validators"
	"github.com/veilvault/veilvault/models"
)

// stubGateway satisfies adapter.GatewayAdapter for runtime tests; the blob
// and ledger methods are never reached because the vault service is mocked.
type stubGateway struct {
	loginErr   error
	loginCalls int
	history    []models.Anchor
	historyErr error
}

func (s *stubGateway) Login(context.Context, adapter.Signer) error {
	s.loginCalls++
	return s.loginErr
}

func (s *stubGateway) History(context.Context, string, int64, uint64) ([]models.Anchor, error) {
	return s.history, s.historyErr
}

func (s *stubGateway) Put(context.Context, []byte) (string, error) {
	return "", errors.New("not wired in test")
}

func (s *stubGateway) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("not wired in test")
}

func (s *stubGateway) Read(context.Context, string) (models.Anchor, error) {
	return models.Anchor{}, errors.New("not wired in test")
}

func (s *stubGateway) Write(context.Context, string, string, int64) (int64, error) {
	return 0, errors.New("not wired in test")
}

type stubVerifier struct {
	report service.VerificationReport
	err    error
}

func (s *stubVerifier) Verify(context.Context, *service.VaultSession) (service.VerificationReport, error) {
	return s.report, s.err
}

type appFixture struct {
	app     *App
	gateway *stubGateway
	vault   *mock.MockVaultService
	policy  *mock.MockPolicyProofService
	out     *bytes.Buffer
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	signer, err := adapter.NewLocalSignerFromSeed(seed)
	require.NoError(t, err)

	gateway := &stubGateway{}
	vault := mock.NewMockVaultService(ctrl)
	policy := mock.NewMockPolicyProofService(ctrl)
	out := &bytes.Buffer{}

	return &appFixture{
		app: &App{
			signer:    signer,
			gateway:   gateway,
			kdf:       crypto.NewKeyDerivation(),
			vault:     vault,
			verifier:  &stubVerifier{},
			policy:    policy,
			validator: validators.NewVaultItemValidator(),
			version:   "v1.2.3-test",
			logger:    logger.Nop(),
			out:       out,
		},
		gateway: gateway,
		vault:   vault,
		policy:  policy,
		out:     out,
	}
}

func TestRun_NoCommand(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_Version_SkipsLogin(t *testing.T) {
	f := newAppFixture(t)
	f.gateway.loginErr = errors.New("gateway down")

	err := f.app.Run(context.Background(), []string{"version"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "v1.2.3-test")
	assert.Zero(t, f.gateway.loginCalls)
}

func TestRun_LoginFailure(t *testing.T) {
	f := newAppFixture(t)
	f.gateway.loginErr = errors.New("gateway down")

	err := f.app.Run(context.Background(), []string{"get"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway login")
}

func TestRun_Add_Success(t *testing.T) {
	f := newAppFixture(t)

	f.vault.EXPECT().
		AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *service.VaultSession, item models.PlaintextItem) (models.Anchor, models.VaultItemCipher, error) {
			assert.Equal(t, "github.com", item.Site)
			assert.Equal(t, "octocat", item.Username)
			return models.Anchor{
					OwnerAddress: session.Owner(),
					Version:      1,
					Commitment:   "deadbeef",
					Locator:      "cafe",
					AnchoredAt:   time.Now(),
				}, models.VaultItemCipher{SecretHash: "0123"}, nil
		})

	err := f.app.Run(context.Background(), []string{
		"add", "-site", "github.com", "-username", "octocat", "-secret", "Tr0ub4dor&3!!",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.gateway.loginCalls)
	assert.Contains(t, f.out.String(), "anchored version 1")
	assert.Contains(t, f.out.String(), "deadbeef")
}

func TestRun_Add_ValidationRejectsBeforeVaultCall(t *testing.T) {
	f := newAppFixture(t)
	// no EXPECT on the vault mock: AddItem must not be reached

	err := f.app.Run(context.Background(), []string{
		"add", "-username", "octocat", "-secret", "Tr0ub4dor&3!!",
	})

	require.ErrorIs(t, err, validators.ErrEmptySite)
}

func TestRun_Get_Success(t *testing.T) {
	f := newAppFixture(t)

	f.vault.EXPECT().
		GetItem(gomock.Any(), gomock.Any()).
		Return(models.PlaintextItem{
			Site:     "github.com",
			Username: "octocat",
			Secret:   []byte("Tr0ub4dor&3!!"),
		}, models.Anchor{Version: 3}, nil)

	err := f.app.Run(context.Background(), []string{"get"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "github.com")
	assert.Contains(t, f.out.String(), "version  3")
}

func TestRun_Verify_ReportsOutcome(t *testing.T) {
	f := newAppFixture(t)
	f.app.verifier = &stubVerifier{report: service.VerificationReport{
		State:  service.StateVerified,
		Anchor: models.Anchor{Version: 2},
	}}

	err := f.app.Run(context.Background(), []string{"verify"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "verified")

	f.out.Reset()
	f.app.verifier = &stubVerifier{report: service.VerificationReport{
		State:  service.StateRejected,
		Reason: service.ReasonCommitmentMismatch,
	}}

	err = f.app.Run(context.Background(), []string{"verify"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "rejected: commitment_mismatch")
}

func TestRun_Prove_SkipsLoginAndPrintsProof(t *testing.T) {
	f := newAppFixture(t)
	f.gateway.loginErr = errors.New("gateway down")

	proof := models.PolicyProof{
		CircuitID:  "circuit-1",
		Proof:      []byte("proof-bytes"),
		SecretHash: "abcd",
	}
	f.policy.EXPECT().
		Prove(gomock.Any(), []byte("Tr0ub4dor&3!!")).
		Return(proof, nil)
	f.policy.EXPECT().
		Verify(proof).
		Return(true, nil)

	err := f.app.Run(context.Background(), []string{"prove", "-secret", "Tr0ub4dor&3!!"})

	require.NoError(t, err)
	assert.Zero(t, f.gateway.loginCalls, "proving is local, no gateway session")
	assert.Contains(t, f.out.String(), "policy proof verified")
	assert.Contains(t, f.out.String(), "circuit-1")
	assert.Contains(t, f.out.String(), "abcd")
}

func TestRun_Prove_PolicyNotMet(t *testing.T) {
	f := newAppFixture(t)

	f.policy.EXPECT().
		Prove(gomock.Any(), []byte("abcabcabc")).
		Return(models.PolicyProof{}, service.ErrPolicyNotMet)

	err := f.app.Run(context.Background(), []string{"prove", "-secret", "abcabcabc"})

	require.ErrorIs(t, err, service.ErrPolicyNotMet)
	assert.NotContains(t, f.out.String(), "verified")
}

func TestRun_History(t *testing.T) {
	f := newAppFixture(t)
	f.gateway.history = []models.Anchor{
		{Version: 2, Commitment: "c2", AnchoredAt: time.Now()},
		{Version: 1, Commitment: "c1", AnchoredAt: time.Now()},
	}

	err := f.app.Run(context.Background(), []string{"history"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "v2\tc2")
	assert.Contains(t, f.out.String(), "v1\tc1")
}

func TestRun_History_Empty(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Run(context.Background(), []string{"history"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "no anchors")
}
