package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/models"
)

// writeStubJSON mirrors the gateway's response shape: without the content
// type header resty would leave SetResult targets unparsed.
func writeStubJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func testSigner(t *testing.T) Signer {
	t.Helper()
	s, err := NewLocalSignerFromSeed(bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)
	return s
}

func TestLocalSigner_DeterministicSignatures(t *testing.T) {
	s := testSigner(t)

	sig1, err := s.Sign(context.Background(), "key-derivation")
	require.NoError(t, err)
	sig2, err := s.Sign(context.Background(), "key-derivation")
	require.NoError(t, err)

	assert.Equal(t, sig1, sig2, "ed25519 signing must be deterministic")
	assert.True(t, VerifySignature(s.PublicKey(), "key-derivation", sig1))
	assert.False(t, VerifySignature(s.PublicKey(), "other message", sig1))
}

func TestLocalSigner_CancelledContextIsRejection(t *testing.T) {
	s := testSigner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sign(ctx, "anything")
	require.ErrorIs(t, err, ErrSigningRejected)
}

func TestGatewayClient_PutVerifiesLocator(t *testing.T) {
	blob := []byte(`{"v":1}`)
	good := hex.EncodeToString(crypto.BlobAddress(blob))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		writeStubJSON(w, models.BlobPutResponse{Locator: good})
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	locator, err := g.Put(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, good, locator)
}

func TestGatewayClient_PutRejectsForeignLocator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStubJSON(w, models.BlobPutResponse{Locator: "deadbeef"})
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	_, err := g.Put(context.Background(), []byte("bytes"))
	require.ErrorIs(t, err, ErrLocatorMismatch)
}

func TestGatewayClient_GetMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	_, err := g.Get(context.Background(), "unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGatewayClient_ServerErrorsAreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	_, err := g.Get(context.Background(), "loc")
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestGatewayClient_AnchorConflictIsStaleVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	_, err := g.Write(context.Background(), "c", "l", 3)
	require.ErrorIs(t, err, ErrStaleVersion)
}

func TestGatewayClient_AnchorReadNoAnchor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	_, err := g.Read(context.Background(), "0xabc")
	require.ErrorIs(t, err, ErrNoAnchor)
}

func TestGatewayClient_LoginStoresToken(t *testing.T) {
	signer := testSigner(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/challenge", func(w http.ResponseWriter, r *http.Request) {
		writeStubJSON(w, models.ChallengeResponse{Challenge: "nonce-123"})
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		sig, err := base64.StdEncoding.DecodeString(req.Signature)
		require.NoError(t, err)
		require.True(t, VerifySignature(signer.PublicKey(), req.Challenge, sig))

		writeStubJSON(w, models.LoginResponse{Token: "session-token"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGatewayClient(GatewayClientConfig{BaseURL: srv.URL})
	require.NoError(t, g.Login(context.Background(), signer))

	impl := g.(*gatewayClient)
	assert.Equal(t, "session-token", impl.sessionToken())
}
