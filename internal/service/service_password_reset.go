package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

// ResetTokenGenerator produces single-use reset tokens.
type ResetTokenGenerator interface {
	NewResetToken() string
}

type passwordResetService struct {
	userRepository store.UserRepository
	mailSender     adapter.MailSender

	hasher    *utils.PasswordHasher
	tokens    ResetTokenGenerator
	validator validators.Validator
	clock     utils.Clock
	metrics   metrics.Recorder

	frontendURL   string
	resetTokenTTL time.Duration

	logger *logger.Logger
}

func NewPasswordResetService(userRepository store.UserRepository, mailSender adapter.MailSender, cfg config.App,
	tokens ResetTokenGenerator, validator validators.Validator, clock utils.Clock, recorder metrics.Recorder,
	logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		mailSender:     mailSender,
		hasher:         utils.NewPasswordHasher(cfg.BcryptCost),
		tokens:         tokens,
		validator:      validator,
		clock:          clock,
		metrics:        recorder,
		frontendURL:    strings.TrimRight(cfg.FrontendURL, "/"),
		resetTokenTTL:  cfg.ResetTokenTTL,
		logger:         logger,
	}
}

// RequestReset stores a new token for the account of email, replacing any
// pending one, and mails the reset link.
//
// Malformed and unknown emails return nil without touching storage. A mail
// failure returns [ErrResetDeliveryFailed] and leaves the stored token valid.
func (p *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		log.Debug().Err(err).Str("func", "*passwordResetService.RequestReset").Msg("reset requested for malformed email")
		return nil
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "*passwordResetService.RequestReset").Msg("reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token := p.tokens.NewResetToken()
	expires := p.clock.Now().Add(p.resetTokenTTL)

	if err = p.userRepository.SetResetToken(ctx, user.UserID, token, expires); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error storing reset token")
		return fmt.Errorf("error storing reset token: %w", err)
	}
	p.metrics.RecordResetRequested()

	body, err := renderResetMail(p.resetLink(token), p.resetTokenTTL.String())
	if err != nil {
		return fmt.Errorf("error rendering reset mail: %w", err)
	}

	if err = p.mailSender.SendMail(ctx, user.Email, resetMailSubject, body); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error sending reset mail")
		return fmt.Errorf("%w: %w", ErrResetDeliveryFailed, err)
	}

	log.Info().Int64("user_id", user.UserID).Time("expires", expires).Msg("reset link issued")
	return nil
}

func (p *passwordResetService) resetLink(token string) string {
	return p.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
}

// ConsumeReset validates the input, then sets the new password and clears
// the token in one conditional update. Of concurrent calls with the same
// token at most one succeeds; the rest get [ErrInvalidOrExpiredToken].
//
// The confirmation mail is best effort.
func (p *passwordResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, models.ResetPasswordRequest{Token: token, NewPassword: newPassword}); err != nil {
		return err
	}

	digest, err := p.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.ConsumeReset").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	user, err := p.userRepository.ConsumeResetToken(ctx, token, digest, p.clock.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidOrExpiredToken
		}
		log.Err(err).Str("func", "*passwordResetService.ConsumeReset").Msg("error consuming reset token")
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	p.metrics.RecordResetCompleted()
	log.Info().Int64("user_id", user.UserID).Msg("password reset")

	if err = p.mailSender.SendMail(ctx, user.Email, changedMailSubject, changedMailBody); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error sending password changed mail")
	}

	return nil
}

func (p *passwordResetService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	cleared, err := p.userRepository.ClearExpiredResetTokens(ctx, p.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("error sweeping reset tokens: %w", err)
	}

	p.metrics.RecordTokensSwept(cleared)
	return cleared, nil
}
