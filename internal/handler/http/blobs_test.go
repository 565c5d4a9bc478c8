// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/models"
)

func TestPutBlob_RoundTrip(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	blob := []byte(`{"ciphertext":"abc","nonce":"def"}`)

	rec := f.do(t, http.MethodPut, "/api/blobs", blob, bearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	var putResp models.BlobPutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &putResp))
	require.NotEmpty(t, putResp.Locator)

	rec = f.do(t, http.MethodGet, "/api/blobs/"+putResp.Locator, nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, blob, rec.Body.Bytes())
}

func TestPutBlob_Empty(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.do(t, http.MethodPut, "/api/blobs", nil, bearer(token))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutBlob_TooLarge(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.do(t, http.MethodPut, "/api/blobs", bytes.Repeat([]byte{'a'}, maxBlobSize+1), bearer(token))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGetBlob_NotFound(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.do(t, http.MethodGet, "/api/blobs/deadbeef", nil, bearer(token))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlobs_RequireAuth(t *testing.T) {
	f := newGatewayFixture(t)

	rec := f.do(t, http.MethodPut, "/api/blobs", []byte("blob"), nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
