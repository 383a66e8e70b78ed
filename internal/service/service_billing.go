package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

type billingService struct {
	gateway   adapter.BillingGateway
	validator validators.Validator

	frontendURL string

	logger *logger.Logger
}

func NewBillingService(gateway adapter.BillingGateway, cfg config.App, validator validators.Validator, logger *logger.Logger) BillingService {
	return &billingService{
		gateway:     gateway,
		validator:   validator,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		logger:      logger,
	}
}

// CreateCheckoutSession opens a subscription checkout for the authenticated
// user. The provider redirects back to the frontend on success or cancel.
func (b *billingService) CreateCheckoutSession(ctx context.Context, identity models.Identity, req models.CheckoutRequest) (models.CheckoutSession, error) {
	if err := b.validator.Validate(ctx, req); err != nil {
		return models.CheckoutSession{}, err
	}

	session, err := b.gateway.CreateCheckoutSession(ctx, adapter.CheckoutParams{
		PriceID:       req.PriceID,
		CustomerEmail: identity.Email,
		UserID:        identity.UserID,
		SuccessURL:    b.frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     b.frontendURL + "/checkout/cancel",
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", identity.UserID).Msg("error creating checkout session")
		return models.CheckoutSession{}, fmt.Errorf("error creating checkout session: %w", err)
	}

	return session, nil
}

// HandleWebhook verifies and decodes a provider event. Known event types are
// logged; others are acknowledged and ignored.
func (b *billingService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (models.BillingEvent, error) {
	log := logger.FromContext(ctx)

	event, err := b.gateway.ParseWebhook(payload, signatureHeader)
	if err != nil {
		log.Warn().Err(err).Msg("webhook rejected")
		return models.BillingEvent{}, err
	}

	switch event.Type {
	case models.BillingEventCheckoutCompleted:
		log.Info().Str("event_id", event.ID).Str("session_id", event.ObjectID).Msg("checkout session completed")
	case models.BillingEventSubscriptionUpdated:
		log.Info().Str("event_id", event.ID).Str("subscription_id", event.ObjectID).Msg("subscription updated")
	case models.BillingEventSubscriptionDeleted:
		log.Info().Str("event_id", event.ID).Str("subscription_id", event.ObjectID).Msg("subscription canceled")
	default:
		log.Debug().Str("event_id", event.ID).Str("type", event.Type).Msg("unhandled webhook event")
	}

	return event, nil
}
