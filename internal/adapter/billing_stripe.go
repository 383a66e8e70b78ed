package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
)

// WebhookTolerance is the maximum age of a webhook signature timestamp.
const WebhookTolerance = 5 * time.Minute

type stripeCheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// stripeGateway talks to the Stripe REST API with form-encoded requests.
type stripeGateway struct {
	client        *utils.HTTPClient
	webhookSecret string
	clock         utils.Clock
	logger        *logger.Logger
}

// NewStripeGateway constructs a [BillingGateway] for Stripe.
func NewStripeGateway(cfg config.Billing, timeout time.Duration, clock utils.Clock, log *logger.Logger) BillingGateway {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout)
	client.SetBasicAuth(cfg.SecretKey, "")

	return &stripeGateway{
		client:        client,
		webhookSecret: cfg.WebhookSecret,
		clock:         clock,
		logger:        log,
	}
}

func (s *stripeGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (models.CheckoutSession, error) {
	var session stripeCheckoutSession

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"mode":                    "subscription",
			"payment_method_types[0]": "card",
			"line_items[0][price]":    params.PriceID,
			"line_items[0][quantity]": "1",
			"customer_email":          params.CustomerEmail,
			"metadata[userId]":        strconv.FormatInt(params.UserID, 10),
			"success_url":             params.SuccessURL,
			"cancel_url":              params.CancelURL,
		}).
		SetResult(&session).
		Post("/v1/checkout/sessions")
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("checkout session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stripeGateway.CreateCheckoutSession").Msg("checkout session rejected")
		return models.CheckoutSession{}, err
	}
	if session.ID == "" {
		return models.CheckoutSession{}, errors.New("checkout session response without id")
	}

	return models.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

func (s *stripeGateway) ParseWebhook(payload []byte, signatureHeader string) (models.BillingEvent, error) {
	if s.webhookSecret == "" {
		return models.BillingEvent{}, ErrBillingDisabled
	}

	err := utils.VerifySignatureHeader(signatureHeader, payload, s.webhookSecret, s.clock.Now(), WebhookTolerance)
	if err != nil {
		return models.BillingEvent{}, fmt.Errorf("%w: %w", ErrInvalidWebhookSignature, err)
	}

	var event stripeEvent
	if err = json.Unmarshal(payload, &event); err != nil {
		return models.BillingEvent{}, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
	}
	if event.Type == "" {
		return models.BillingEvent{}, fmt.Errorf("%w: missing event type", ErrInvalidWebhookPayload)
	}

	return models.BillingEvent{ID: event.ID, Type: event.Type, ObjectID: event.Data.Object.ID}, nil
}

// disabledBillingGateway answers every call with [ErrBillingDisabled].
type disabledBillingGateway struct{}

func (disabledBillingGateway) CreateCheckoutSession(context.Context, CheckoutParams) (models.CheckoutSession, error) {
	return models.CheckoutSession{}, ErrBillingDisabled
}

func (disabledBillingGateway) ParseWebhook([]byte, string) (models.BillingEvent, error) {
	return models.BillingEvent{}, ErrBillingDisabled
}
