package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/utils"
)

// withAuth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and on success
// stores the authenticated owner address in the request context under
// [utils.OwnerCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, the token is expired, or the token is
// otherwise invalid.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.auth.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated owner in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.OwnerCtxKey, token.OwnerAddress)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
