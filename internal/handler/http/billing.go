package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
)

const signatureHeader = "Stripe-Signature"

func (h *Handler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var request models.CheckoutRequest
	if err := utils.DecodeJSON(r, &request, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.BillingService.CreateCheckoutSession(r.Context(), identity, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

// billingWebhook needs the raw body: the signature covers the exact bytes.
func (h *Handler) billingWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		writeError(w, r, utils.ErrInvalidJSONBody)
		return
	}

	if _, err = h.services.BillingService.HandleWebhook(r.Context(), payload, r.Header.Get(signatureHeader)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebhookAck{Received: true}, http.StatusOK)
}
