package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/utils"
	"github.com/veilvault/veilvault/models"
)

func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	challenge, err := h.auth.NewChallenge(req.OwnerAddress)
	if err != nil {
		log.Err(err).Msg("failed to issue login challenge")
		http.Error(w, "owner address is required", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.ChallengeResponse{Challenge: challenge}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeUnknown):
			log.Err(err).Str("owner", req.OwnerAddress).Msg("unknown or expired challenge")
			http.Error(w, "unknown or expired challenge", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrBadSignature):
			log.Err(err).Str("owner", req.OwnerAddress).Msg("challenge signature rejected")
			http.Error(w, "signature verification failed", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("owner", req.OwnerAddress).Msg("owner successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
