package adapter

import "errors"

var (
	// ErrDeliveryFailed is returned when a mail could not be handed to the
	// mail provider.
	ErrDeliveryFailed = errors.New("mail delivery failed")

	// ErrBillingDisabled is returned by every billing call when no payment
	// provider key is configured.
	ErrBillingDisabled = errors.New("billing is not configured")

	// ErrInvalidWebhookSignature is returned when a webhook signature header
	// is missing, malformed, stale or does not match the payload.
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

	// ErrInvalidWebhookPayload is returned when a verified webhook body cannot
	// be decoded.
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

// Upstream HTTP failures, mapped from response status by mapHTTPError.
var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrTooManyRequests     = errors.New("upstream rate limited")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("upstream bad gateway")
)
