package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createLibrary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var in models.LibraryInput
	if err := utils.DecodeJSON(r, &in, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	library, err := h.services.LibraryService.CreateLibrary(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, library, http.StatusCreated)
}

func (h *Handler) listLibraries(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	libraries, err := h.services.LibraryService.ListLibraries(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, libraries, http.StatusOK)
}

func (h *Handler) renameLibrary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	libraryID, err := pathID(r, "libraryID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.LibraryInput
	if err = utils.DecodeJSON(r, &in, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	library, err := h.services.LibraryService.RenameLibrary(r.Context(), userID, libraryID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, library, http.StatusOK)
}

func (h *Handler) deleteLibrary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	libraryID, err := pathID(r, "libraryID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LibraryService.DeleteLibrary(r.Context(), userID, libraryID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgLibraryDeleted, http.StatusOK)
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}
