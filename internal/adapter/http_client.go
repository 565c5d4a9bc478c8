// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/models"
)

// GatewayAdapter is the client-side view of the development gateway: one
// HTTP endpoint playing the storage and ledger collaborators, plus the
// challenge-signature login that opens a session.
type GatewayAdapter interface {
	// Login obtains a session token by signing a gateway challenge.
	Login(ctx context.Context, signer Signer) error

	// History returns an owner's anchor trail, newest first. sinceVersion
	// and limit are passed through to the gateway when positive.
	History(ctx context.Context, ownerAddress string, sinceVersion int64, limit uint64) ([]models.Anchor, error)

	BlobStore
	AnchorLedger
}

// GatewayClientConfig configures the resty transport.
type GatewayClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// gatewayClient is the private implementation of [GatewayAdapter].
type gatewayClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewGatewayClient constructs a [GatewayAdapter]. Transient 5xx responses
// are retried by resty with backoff before surfacing as unavailable.
func NewGatewayClient(cfg GatewayClientConfig) GatewayAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() >= 500
		})

	return &gatewayClient{client: cli}
}

// Login implements [GatewayAdapter].
func (g *gatewayClient) Login(ctx context.Context, signer Signer) error {
	var challenge models.ChallengeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{OwnerAddress: signer.OwnerAddress()}).
		SetResult(&challenge).
		Post("/api/auth/challenge")
	if err != nil {
		return fmt.Errorf("challenge request: %w: %v", ErrChainUnavailable, err)
	}
	if err = mapHTTPError(resp, ErrChainUnavailable); err != nil {
		return err
	}

	sig, err := signer.Sign(ctx, challenge.Challenge)
	if err != nil {
		return fmt.Errorf("sign challenge: %w", err)
	}

	var login models.LoginResponse
	resp, err = g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{
			OwnerAddress: signer.OwnerAddress(),
			Challenge:    challenge.Challenge,
			Signature:    base64.StdEncoding.EncodeToString(sig),
			PublicKey:    base64.StdEncoding.EncodeToString(signer.PublicKey()),
		}).
		SetResult(&login).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w: %v", ErrChainUnavailable, err)
	}
	if err = mapHTTPError(resp, ErrChainUnavailable); err != nil {
		return err
	}

	g.mu.Lock()
	g.token = strings.TrimSpace(login.Token)
	g.mu.Unlock()
	return nil
}

// Put implements [BlobStore]. The returned locator is cross-checked against
// the locally computed content address; a store answering with anything
// else is broken or lying and the write is treated as failed.
func (g *gatewayClient) Put(ctx context.Context, blob []byte) (string, error) {
	want := hex.EncodeToString(crypto.BlobAddress(blob))

	var put models.BlobPutResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Authorization", "Bearer "+g.sessionToken()).
		SetBody(blob).
		SetResult(&put).
		Put("/api/blobs")
	if err != nil {
		return "", fmt.Errorf("blob put: %w: %v", ErrStorageUnavailable, err)
	}
	if err = mapHTTPError(resp, ErrStorageUnavailable); err != nil {
		return "", err
	}

	if put.Locator != want {
		return "", fmt.Errorf("put returned %q, locally computed %q: %w", put.Locator, want, ErrLocatorMismatch)
	}
	return put.Locator, nil
}

// Get implements [BlobStore].
func (g *gatewayClient) Get(ctx context.Context, locator string) ([]byte, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.sessionToken()).
		Get("/api/blobs/" + locator)
	if err != nil {
		return nil, fmt.Errorf("blob get: %w: %v", ErrStorageUnavailable, err)
	}
	if err = mapHTTPError(resp, ErrStorageUnavailable); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Read implements [AnchorLedger].
func (g *gatewayClient) Read(ctx context.Context, ownerAddress string) (models.Anchor, error) {
	var anchor models.Anchor
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.sessionToken()).
		SetResult(&anchor).
		Get("/api/anchors/" + ownerAddress)
	if err != nil {
		return models.Anchor{}, fmt.Errorf("anchor read: %w: %v", ErrChainUnavailable, err)
	}
	if resp.StatusCode() == 404 {
		return models.Anchor{}, ErrNoAnchor
	}
	if err = mapHTTPError(resp, ErrChainUnavailable); err != nil {
		return models.Anchor{}, err
	}
	return anchor, nil
}

// History implements [GatewayAdapter].
func (g *gatewayClient) History(ctx context.Context, ownerAddress string, sinceVersion int64, limit uint64) ([]models.Anchor, error) {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.sessionToken())
	if sinceVersion > 0 {
		req.SetQueryParam("since", strconv.FormatInt(sinceVersion, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	var anchors []models.Anchor
	resp, err := req.SetResult(&anchors).Get("/api/anchors/" + ownerAddress + "/history")
	if err != nil {
		return nil, fmt.Errorf("anchor history: %w: %v", ErrChainUnavailable, err)
	}
	if err = mapHTTPError(resp, ErrChainUnavailable); err != nil {
		return nil, err
	}
	return anchors, nil
}

// Write implements [AnchorLedger].
func (g *gatewayClient) Write(ctx context.Context, commitment, locator string, expectedVersion int64) (int64, error) {
	var out models.AnchorWriteResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+g.sessionToken()).
		SetBody(models.AnchorWriteRequest{
			Commitment:      commitment,
			Locator:         locator,
			ExpectedVersion: expectedVersion,
		}).
		SetResult(&out).
		Post("/api/anchors")
	if err != nil {
		return 0, fmt.Errorf("anchor write: %w: %v", ErrChainUnavailable, err)
	}
	if resp.StatusCode() == 409 {
		return 0, ErrStaleVersion
	}
	if err = mapHTTPError(resp, ErrChainUnavailable); err != nil {
		return 0, err
	}
	return out.Version, nil
}

func (g *gatewayClient) sessionToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// mapHTTPError translates a gateway response into the adapter error
// taxonomy. transient names the "unavailable" kind for this collaborator,
// so callers can tell "data is bad" from "service is down".
func mapHTTPError(resp *resty.Response, transient error) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == 401 || resp.StatusCode() == 403:
		return ErrUnauthorized
	case resp.StatusCode() == 404:
		return ErrNotFound
	case resp.StatusCode() >= 500:
		return fmt.Errorf("%w: gateway answered %d", transient, resp.StatusCode())
	default:
		var body models.ErrorResponse
		if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
			return fmt.Errorf("gateway rejected request (%d): %s", resp.StatusCode(), body.Error)
		}
		return fmt.Errorf("gateway rejected request (%d)", resp.StatusCode())
	}
}
