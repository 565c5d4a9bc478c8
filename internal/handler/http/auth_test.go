// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/models"
)

func TestChallenge_Success(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.doJSON(t, http.MethodPost, "/api/auth/challenge", models.ChallengeRequest{OwnerAddress: f.signer.OwnerAddress()}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChallengeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Challenge)
}

func TestChallenge_InvalidJSON(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.do(t, http.MethodPost, "/api/auth/challenge", []byte("{not json"), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChallenge_MissingOwner(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.doJSON(t, http.MethodPost, "/api/auth/challenge", models.ChallengeRequest{}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	f := newGatewayFixture(t)

	token := f.login(t)

	assert.NotEmpty(t, token)
}

func TestLogin_UnknownChallenge(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.doJSON(t, http.MethodPost, "/api/auth/login", models.LoginRequest{
		OwnerAddress: f.signer.OwnerAddress(),
		Challenge:    "never-issued",
		Signature:    base64.StdEncoding.EncodeToString([]byte("sig")),
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "unknown or expired challenge"))
}

func TestLogin_BadSignature(t *testing.T) {
	f := newGatewayFixture(t)
	owner := f.signer.OwnerAddress()

	rec := f.doJSON(t, http.MethodPost, "/api/auth/challenge", models.ChallengeRequest{OwnerAddress: owner}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var challengeResp models.ChallengeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &challengeResp))

	rec = f.doJSON(t, http.MethodPost, "/api/auth/login", models.LoginRequest{
		OwnerAddress: owner,
		Challenge:    challengeResp.Challenge,
		Signature:    base64.StdEncoding.EncodeToString([]byte("not a real signature")),
		PublicKey:    base64.StdEncoding.EncodeToString(f.signer.PublicKey()),
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "signature verification failed"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.do(t, http.MethodPost, "/api/auth/login", []byte("{{"), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
