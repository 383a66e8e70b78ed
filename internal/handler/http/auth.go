package http

import (
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, token, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
		User:    registeredUser.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.SignedString,
		User:    models.PublicUser{UserID: foundUser.UserID, Email: foundUser.Email},
	}, http.StatusOK)
}

// forgotPassword answers the same way for known and unknown emails.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ForgotPasswordRequest
	if err := utils.DecodeJSON(r, &request, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgResetLinkSent, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ResetPasswordRequest
	if err := utils.DecodeJSON(r, &request, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.ConsumeReset(r.Context(), request.Token, request.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgPasswordReset, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
