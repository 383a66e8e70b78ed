package http

import (
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

// auth rejects requests without a valid "Authorization: Bearer <jwt>" header
// with 401 and a uniform body. On success the caller's identity is stored in
// the request context; the request itself is not modified.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request is not authenticated")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
