// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the server: transactional
// mail through Microsoft Graph and subscription billing through Stripe.
//
// Both integrations talk REST through resty. Upstream HTTP failures are
// mapped to the sentinel errors in errors.go by mapHTTPError so callers can
// use [errors.Is]. Each integration has a fallback used when its credentials
// are not configured: mail is only logged, billing answers
// [ErrBillingDisabled].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-story-nook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MailSender delivers a single HTML mail.
type MailSender interface {
	// SendMail returns an error wrapping [ErrDeliveryFailed] when the
	// provider rejects or cannot be reached.
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

// BillingGateway creates checkout sessions and authenticates webhooks of the
// payment provider.
type BillingGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (models.CheckoutSession, error)

	// ParseWebhook verifies signatureHeader against payload and decodes the
	// event. Verification failures wrap [ErrInvalidWebhookSignature].
	ParseWebhook(payload []byte, signatureHeader string) (models.BillingEvent, error)
}

// CheckoutParams describes a subscription checkout for one user.
type CheckoutParams struct {
	PriceID       string
	CustomerEmail string
	UserID        int64
	SuccessURL    string
	CancelURL     string
}
