package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "session created", wantStatus: http.StatusOK},
		{name: "billing not configured", serviceErr: adapter.ErrBillingDisabled, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.BillingService = &mockBillingService{
				checkoutFn: func(_ context.Context, identity models.Identity, req models.CheckoutRequest) (models.CheckoutSession, error) {
					assert.Equal(t, testIdentity, identity)
					assert.Equal(t, "price_123", req.PriceID)
					if tt.serviceErr != nil {
						return models.CheckoutSession{}, tt.serviceErr
					}
					return models.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.test/cs_test_1"}, nil
				},
			}

			rr := serve(newTestHandler(services), authorized(jsonRequest(t, http.MethodPost,
				"/api/billing/checkout-session", models.CheckoutRequest{PriceID: "price_123"})))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.serviceErr == nil {
				assert.Equal(t, "cs_test_1", decodeBody[models.CheckoutSession](t, rr).SessionID)
			}
		})
	}
}

func TestCreateCheckoutSession_RequiresAuthorization(t *testing.T) {
	rr := serve(newTestHandler(newTestServices()), jsonRequest(t, http.MethodPost,
		"/api/billing/checkout-session", models.CheckoutRequest{PriceID: "price_123"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBillingWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "acknowledged", wantStatus: http.StatusOK, wantBody: `{"received":true}`},
		{name: "bad signature", serviceErr: adapter.ErrInvalidWebhookSignature, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidSignature},
		{name: "bad payload", serviceErr: adapter.ErrInvalidWebhookPayload, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidWebhookPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.BillingService = &mockBillingService{
				webhookFn: func(_ context.Context, got []byte, signature string) (models.BillingEvent, error) {
					assert.Equal(t, payload, got, "payload must reach the service byte for byte")
					assert.Equal(t, "t=1,v1=abc", signature)
					if tt.serviceErr != nil {
						return models.BillingEvent{}, tt.serviceErr
					}
					return models.BillingEvent{ID: "evt_1", Type: models.BillingEventCheckoutCompleted}, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", bytes.NewReader(payload))
			req.Header.Set(signatureHeader, "t=1,v1=abc")

			rr := serve(newTestHandler(services), req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}
