package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

const graphScope = "https://graph.microsoft.com/.default"

// tokenRefreshMargin renews the access token this long before it expires.
const tokenRefreshMargin = time.Minute

type graphTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type graphEmailAddress struct {
	Address string `json:"address"`
}

type graphRecipient struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
}

type graphItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphItemBody    `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type graphSendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

// graphMailSender sends mail as cfg.FromAddress through the Microsoft Graph
// sendMail endpoint using an app-only OAuth2 client-credentials token.
type graphMailSender struct {
	cfg   config.Mail
	graph *utils.HTTPClient
	auth  *utils.HTTPClient
	clock utils.Clock

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	logger *logger.Logger
}

// NewGraphMailSender constructs a [MailSender] backed by Microsoft Graph.
func NewGraphMailSender(cfg config.Mail, timeout time.Duration, clock utils.Clock, log *logger.Logger) MailSender {
	return &graphMailSender{
		cfg:    cfg,
		graph:  utils.NewHTTPClient(strings.TrimRight(cfg.GraphBaseURL, "/"), timeout),
		auth:   utils.NewHTTPClient(strings.TrimRight(cfg.AuthBaseURL, "/"), timeout),
		clock:  clock,
		logger: log,
	}
}

func (g *graphMailSender) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	token, err := g.token(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	body := graphSendMailRequest{
		Message: graphMessage{
			Subject:      subject,
			Body:         graphItemBody{ContentType: "HTML", Content: htmlBody},
			ToRecipients: []graphRecipient{{EmailAddress: graphEmailAddress{Address: to}}},
		},
		SaveToSentItems: false,
	}

	resp, err := g.graph.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/users/" + url.PathEscape(g.cfg.FromAddress) + "/sendMail")
	if err != nil {
		return fmt.Errorf("%w: send mail request: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			g.invalidateToken()
		}
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*graphMailSender.SendMail").Str("subject", subject).Msg("mail sent")
	return nil
}

// token returns a cached access token or fetches a new one.
func (g *graphMailSender) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if g.accessToken != "" && now.Before(g.expiresAt) {
		return g.accessToken, nil
	}

	var result graphTokenResponse
	resp, err := g.auth.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     g.cfg.ClientID,
			"client_secret": g.cfg.ClientSecret,
			"scope":         graphScope,
			"grant_type":    "client_credentials",
		}).
		SetResult(&result).
		Post("/" + url.PathEscape(g.cfg.TenantID) + "/oauth2/v2.0/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", errors.New("token response without access_token")
	}

	g.accessToken = result.AccessToken
	g.expiresAt = now.Add(time.Duration(result.ExpiresIn)*time.Second - tokenRefreshMargin)

	return g.accessToken, nil
}

func (g *graphMailSender) invalidateToken() {
	g.mu.Lock()
	g.accessToken = ""
	g.mu.Unlock()
}
