package client

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/config"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/store"
	"github.com/veilvault/veilvault/internal/validators"
	"github.com/veilvault/veilvault/internal/workers"
	"github.com/veilvault/veilvault/internal/zk"
	"github.com/veilvault/veilvault/models"
)

// proofPoolSize bounds concurrent Groth16 proving jobs. Proving is memory
// hungry; two in flight is plenty for an interactive client.
const proofPoolSize = 2

type App struct {
	signer    adapter.Signer
	gateway   adapter.GatewayAdapter
	kdf       crypto.KeyDerivation
	vault     service.VaultService
	verifier  Verifier
	policy    service.PolicyProofService
	validator validators.Validator
	version   string

	pool   *workers.Pool
	state  *store.ClientStateStore
	logger *logger.Logger
	out    io.Writer
}

// NewApp wires the full client runtime from configuration: development
// wallet, gateway adapter, Groth16 backend, worker pool, local state store
// and the vault/verification services on top of them.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	signer, err := newSigner(cfg.Client.WalletSeed)
	if err != nil {
		return nil, fmt.Errorf("create wallet signer: %w", err)
	}

	gateway := adapter.NewGatewayClient(adapter.GatewayClientConfig{
		BaseURL: cfg.Client.GatewayURL,
		Timeout: cfg.Client.RequestTimeout,
	})

	state, err := store.NewClientStateStore(ctx, cfg.Client.StatePath, log)
	if err != nil {
		return nil, fmt.Errorf("open client state store: %w", err)
	}

	backend, err := zk.NewGroth16Backend(cfg.Client.ArtifactDir, log)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("set up proving backend: %w", err)
	}

	pool := workers.NewPool(proofPoolSize, log)
	integrity := service.NewIntegrityProofService(backend, pool, cfg.Client.ProofTimeout, log)
	policy := service.NewPolicyProofService(backend, pool, cfg.Client.ProofTimeout, log)

	engine := crypto.NewEncryptionEngine()
	commits := crypto.NewCommitmentBuilder()

	return &App{
		signer:    signer,
		gateway:   gateway,
		kdf:       crypto.NewKeyDerivation(),
		vault:     service.NewVaultService(engine, commits, gateway, gateway, state, log),
		verifier:  service.NewVerificationService(engine, commits, gateway, gateway, state, integrity, uint64(cfg.Client.FetchRetries), log),
		policy:    policy,
		validator: validators.NewVaultItemValidator(),
		version:   cfg.App.Version,
		pool:      pool,
		state:     state,
		logger:    log,
		out:       os.Stdout,
	}, nil
}

// Close releases the worker pool and the local state store.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Shutdown()
	}
	if a.state != nil {
		a.state.Close()
	}
}

// Run dispatches a single command. The session is opened fresh per run and
// closed (key material zeroed) before returning.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: vault <add|get|verify|prove|history|version> [flags]")
	}

	command, rest := args[0], args[1:]

	// version and prove are purely local; no gateway session needed.
	switch command {
	case "version":
		fmt.Fprintln(a.out, a.version)
		return nil
	case "prove":
		return a.runProve(ctx, rest)
	}

	if err := a.gateway.Login(ctx, a.signer); err != nil {
		return fmt.Errorf("gateway login: %w", err)
	}

	switch command {
	case "add":
		return a.runAdd(ctx, rest)
	case "get":
		return a.runGet(ctx)
	case "verify":
		return a.runVerify(ctx)
	case "history":
		return a.runHistory(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	site := flags.String("site", "", "site domain the secret belongs to")
	username := flags.String("username", "", "username hint")
	secret := flags.String("secret", "", "the secret to store")
	url := flags.String("url", "", "optional full URL")
	notes := flags.String("notes", "", "optional notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	item := models.PlaintextItem{
		Site:     *site,
		Username: *username,
		Secret:   []byte(*secret),
		Meta: models.ItemMetadata{
			URL:   *url,
			Notes: *notes,
		},
	}
	if err := a.validator.Validate(ctx, item); err != nil {
		return err
	}

	session, err := service.OpenVaultSession(ctx, a.signer, a.kdf)
	if err != nil {
		return fmt.Errorf("open vault session: %w", err)
	}
	defer session.Close()

	anchor, rec, err := a.vault.AddItem(ctx, session, item)
	crypto.Zero(item.Secret)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "anchored version %d\n", anchor.Version)
	fmt.Fprintf(a.out, "commitment  %s\n", anchor.Commitment)
	fmt.Fprintf(a.out, "locator     %s\n", anchor.Locator)
	fmt.Fprintf(a.out, "secret hash %s\n", rec.SecretHash)
	return nil
}

func (a *App) runGet(ctx context.Context) error {
	session, err := service.OpenVaultSession(ctx, a.signer, a.kdf)
	if err != nil {
		return fmt.Errorf("open vault session: %w", err)
	}
	defer session.Close()

	item, anchor, err := a.vault.GetItem(ctx, session)
	if err != nil {
		return err
	}
	defer crypto.Zero(item.Secret)

	fmt.Fprintf(a.out, "site     %s\n", item.Site)
	fmt.Fprintf(a.out, "username %s\n", item.Username)
	fmt.Fprintf(a.out, "secret   %s\n", item.Secret)
	fmt.Fprintf(a.out, "version  %d\n", anchor.Version)
	return nil
}

func (a *App) runVerify(ctx context.Context) error {
	session, err := service.OpenVaultSession(ctx, a.signer, a.kdf)
	if err != nil {
		return fmt.Errorf("open vault session: %w", err)
	}
	defer session.Close()

	report, err := a.verifier.Verify(ctx, session)
	if err != nil {
		return err
	}

	if report.Verified() {
		fmt.Fprintf(a.out, "verified: anchor version %d checks out\n", report.Anchor.Version)
		return nil
	}
	fmt.Fprintf(a.out, "rejected: %s\n", report.Reason)
	return nil
}

// runProve generates a standalone policy proof for a secret, without
// storing anything. The proof and its public digest are printed so they can
// be handed to an auditor who never sees the secret.
func (a *App) runProve(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("prove", flag.ContinueOnError)
	secret := flags.String("secret", "", "the secret to prove policy compliance for")
	if err := flags.Parse(args); err != nil {
		return err
	}

	buf := []byte(*secret)
	defer crypto.Zero(buf)

	proof, err := a.policy.Prove(ctx, buf)
	if err != nil {
		return err
	}

	ok, err := a.policy.Verify(proof)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("freshly generated policy proof failed verification")
	}

	fmt.Fprintln(a.out, "policy proof verified")
	fmt.Fprintf(a.out, "circuit     %s\n", proof.CircuitID)
	fmt.Fprintf(a.out, "secret hash %s\n", proof.SecretHash)
	fmt.Fprintf(a.out, "proof       %s\n", base64.StdEncoding.EncodeToString(proof.Proof))
	return nil
}

func (a *App) runHistory(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("history", flag.ContinueOnError)
	since := flags.Int64("since", 0, "only show anchors above this version")
	limit := flags.Uint64("limit", 0, "cap the number of rows")
	if err := flags.Parse(args); err != nil {
		return err
	}

	anchors, err := a.gateway.History(ctx, a.signer.OwnerAddress(), *since, *limit)
	if err != nil {
		return err
	}
	if len(anchors) == 0 {
		fmt.Fprintln(a.out, "no anchors")
		return nil
	}

	for _, anchor := range anchors {
		fmt.Fprintf(a.out, "v%d\t%s\t%s\n", anchor.Version, anchor.Commitment, anchor.AnchoredAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// newSigner builds the development wallet. A fixed hex seed keeps keys
// re-derivable across runs; an empty seed means a fresh throwaway wallet.
func newSigner(seedHex string) (adapter.Signer, error) {
	if seedHex == "" {
		return adapter.NewLocalSigner()
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("wallet seed is not valid hex: %w", err)
	}
	return adapter.NewLocalSignerFromSeed(seed)
}
