// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/models"
)

func postAnchorReq(commitment, locator string, expected int64) models.AnchorWriteRequest {
	return models.AnchorWriteRequest{Commitment: commitment, Locator: locator, ExpectedVersion: expected}
}

func TestPostAnchor_FirstWrite(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq("c1", "l1", 0), bearer(token))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnchorWriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Version)
}

func TestPostAnchor_OwnerComesFromToken(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq("c1", "l1", 0), bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	// Anchor landed under the token owner, not under any address from the body.
	rec = f.do(t, http.MethodGet, "/api/anchors/"+f.signer.OwnerAddress(), nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var anchor models.Anchor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anchor))
	assert.Equal(t, f.signer.OwnerAddress(), anchor.OwnerAddress)
	assert.Equal(t, "c1", anchor.Commitment)
}

func TestPostAnchor_StaleVersionConflict(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq("c1", "l1", 0), bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	// Replay with the same expected version.
	rec = f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq("c2", "l2", 0), bearer(token))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestPostAnchor_MissingFields(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq("", "", 0), bearer(token))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnchor_NotFound(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)

	rec := f.do(t, http.MethodGet, "/api/anchors/0xunknown", nil, bearer(token))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAnchorHistory_NewestFirstWithFilter(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)
	owner := f.signer.OwnerAddress()

	for i, c := range []string{"c1", "c2", "c3"} {
		rec := f.doJSON(t, http.MethodPost, "/api/anchors", postAnchorReq(c, "l", int64(i)), bearer(token))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/anchors/"+owner+"/history?since=1&limit=2", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var anchors []models.Anchor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anchors))
	require.Len(t, anchors, 2)
	assert.Equal(t, int64(3), anchors[0].Version)
	assert.Equal(t, int64(2), anchors[1].Version)
}

func TestGetAnchorHistory_BadQueryParams(t *testing.T) {
	f := newGatewayFixture(t)
	token := f.login(t)
	owner := f.signer.OwnerAddress()

	rec := f.do(t, http.MethodGet, "/api/anchors/"+owner+"/history?since=NaN", nil, bearer(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/anchors/"+owner+"/history?limit=-1", nil, bearer(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
