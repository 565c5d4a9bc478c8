package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/store"
	"github.com/veilvault/veilvault/internal/utils"
	"github.com/veilvault/veilvault/models"
)

// maxBlobSize caps uploaded bundle size. Encrypted vault bundles are small
// JSON documents; anything bigger is a mistake or abuse.
const maxBlobSize = 1 << 20

func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blob, err := io.ReadAll(io.LimitReader(r.Body, maxBlobSize+1))
	if err != nil {
		log.Err(err).Msg("failed to read blob body")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(blob) == 0 {
		http.Error(w, "empty blob", http.StatusBadRequest)
		return
	}
	if len(blob) > maxBlobSize {
		http.Error(w, "blob too large", http.StatusRequestEntityTooLarge)
		return
	}

	locator, err := h.blobs.Put(ctx, blob)
	if err != nil {
		log.Err(err).Msg("failed to store blob")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("locator", locator).Int("size", len(blob)).Msg("blob accepted")
	utils.WriteJSON(w, models.BlobPutResponse{Locator: locator}, http.StatusCreated)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	locator := chi.URLParam(r, "locator")

	blob, err := h.blobs.Get(ctx, locator)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("locator", locator).Msg("failed to read blob")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}
