package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/store"
	"github.com/veilvault/veilvault/internal/utils"
	"github.com/veilvault/veilvault/models"
)

// getAnchor serves the latest anchor for any owner. Reads are not restricted
// to the authenticated owner: anchors are public ledger records, and
// third-party verification depends on reading them.
func (h *Handler) getAnchor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner := chi.URLParam(r, "owner")

	anchor, err := h.anchors.GetLatest(ctx, owner)
	if err != nil {
		if errors.Is(err, store.ErrAnchorNotFound) {
			http.Error(w, "no anchor for owner", http.StatusNotFound)
			return
		}
		log.Err(err).Str("owner", owner).Msg("failed to read latest anchor")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusOK)
}

// getAnchorHistory serves an owner's anchor trail, newest first. Query
// params: since (version floor), limit (row cap).
func (h *Handler) getAnchorHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.AnchorHistoryFilter{OwnerAddress: chi.URLParam(r, "owner")}
	if since := r.URL.Query().Get("since"); since != "" {
		v, err := strconv.ParseInt(since, 10, 64)
		if err != nil {
			http.Error(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
		filter.SinceVersion = v
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		v, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		filter.Limit = v
	}

	anchors, err := h.anchors.History(ctx, filter)
	if err != nil {
		log.Err(err).Str("owner", filter.OwnerAddress).Msg("failed to read anchor history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, anchors, http.StatusOK)
}

// postAnchor appends a new anchor for the authenticated owner. The owner
// address comes from the session token, never from the body: a client can
// only ever anchor under its own address.
func (h *Handler) postAnchor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AnchorWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Commitment == "" || req.Locator == "" {
		http.Error(w, "commitment and locator are required", http.StatusBadRequest)
		return
	}

	version, err := h.anchors.Append(ctx, models.Anchor{
		OwnerAddress: owner,
		Commitment:   req.Commitment,
		Locator:      req.Locator,
	}, req.ExpectedVersion)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			log.Warn().Str("owner", owner).Int64("expected_version", req.ExpectedVersion).Msg("stale anchor write rejected")
			http.Error(w, "anchor version conflict", http.StatusConflict)
			return
		}
		log.Err(err).Str("owner", owner).Msg("failed to append anchor")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AnchorWriteResponse{Version: version}, http.StatusOK)
}
