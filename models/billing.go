package models

// CheckoutRequest is the body of the checkout-session endpoint.
type CheckoutRequest struct {
	PriceID string `json:"priceId"`
}

// CheckoutSession is the payment-provider session a client is redirected to.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url,omitempty"`
}

// BillingEvent is the subset of a payment-provider webhook event we act on.
type BillingEvent struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	ObjectID string `json:"-"`
}

// Billing event types handled by the webhook.
const (
	BillingEventCheckoutCompleted   = "checkout.session.completed"
	BillingEventSubscriptionUpdated = "customer.subscription.updated"
	BillingEventSubscriptionDeleted = "customer.subscription.deleted"
)
