package adapter

import (
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

// Adapters bundles the outbound integrations.
type Adapters struct {
	Mail    MailSender
	Billing BillingGateway
}

// NewAdapters picks the real integration for every provider with credentials
// and the fallback for the rest.
func NewAdapters(cfg config.Adapter, clock utils.Clock, log *logger.Logger) *Adapters {
	adapters := &Adapters{}

	if cfg.Mail.TenantID != "" {
		adapters.Mail = NewGraphMailSender(cfg.Mail, cfg.RequestTimeout, clock, log.Component("mail"))
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("mail provider is not configured, mails are only logged")
		adapters.Mail = NewLogMailSender(log.Component("mail"))
	}

	if cfg.Billing.SecretKey != "" {
		adapters.Billing = NewStripeGateway(cfg.Billing, cfg.RequestTimeout, clock, log.Component("billing"))
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("billing is not configured")
		adapters.Billing = disabledBillingGateway{}
	}

	return adapters
}
