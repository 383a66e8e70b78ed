package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

// errorResponse is the status and public message for a family of errors.
type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{validators.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgValidationFailed}},
	{utils.ErrInvalidJSONBody, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},
	{ErrInvalidPathID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{ErrNoCoverFile, errorResponse{http.StatusBadRequest, app.MsgNoCoverFile}},

	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrInvalidOrExpiredToken, errorResponse{http.StatusBadRequest, app.MsgInvalidOrExpiredToken}},
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{ErrNoIdentity, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailRegistered}},

	{service.ErrLibraryNotFound, errorResponse{http.StatusNotFound, app.MsgLibraryNotFound}},
	{service.ErrBookNotFound, errorResponse{http.StatusNotFound, app.MsgBookNotFound}},
	{service.ErrUnsupportedCoverType, errorResponse{http.StatusBadRequest, app.MsgUnsupportedCoverType}},
	{service.ErrCoverTooLarge, errorResponse{http.StatusBadRequest, app.MsgCoverTooLarge}},

	{adapter.ErrInvalidWebhookSignature, errorResponse{http.StatusBadRequest, app.MsgInvalidSignature}},
	{adapter.ErrInvalidWebhookPayload, errorResponse{http.StatusBadRequest, app.MsgInvalidWebhookPayload}},
	{adapter.ErrBillingDisabled, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
	{store.ErrCoverStorageDisabled, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with its mapped status and message.
// Validation errors also carry their per-field messages.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	body := models.ErrorResponse{Error: resp.message}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, resp.status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
