package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
)

// coverFormField is the multipart field carrying the image.
const coverFormField = "cover"

// bookPath reads the caller and the library and book ids of a book route.
// bookID is zero on collection routes.
func bookPath(r *http.Request, withBook bool) (userID, libraryID, bookID int64, err error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, 0, ErrNoIdentity
	}

	if libraryID, err = pathID(r, "libraryID"); err != nil {
		return 0, 0, 0, err
	}

	if withBook {
		if bookID, err = pathID(r, "bookID"); err != nil {
			return 0, 0, 0, err
		}
	}

	return userID, libraryID, bookID, nil
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	userID, libraryID, _, err := bookPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.BookInput
	if err = utils.DecodeJSON(r, &in, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), userID, libraryID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	userID, libraryID, _, err := bookPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	books, err := h.services.BookService.ListBooks(r.Context(), userID, libraryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	userID, libraryID, bookID, err := bookPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd models.BookUpdate
	if err = utils.DecodeJSON(r, &upd, maxJSONBody); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.UpdateBook(r.Context(), userID, libraryID, bookID, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	userID, libraryID, bookID, err := bookPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookService.DeleteBook(r.Context(), userID, libraryID, bookID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgBookDeleted, http.StatusOK)
}

// uploadCover reads the "cover" part of a multipart form. Bodies well past
// the cover limit are rejected before the service sees them.
func (h *Handler) uploadCover(w http.ResponseWriter, r *http.Request) {
	userID, libraryID, bookID, err := bookPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := readCover(w, r, h.coverLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.UploadCover(r.Context(), userID, libraryID, bookID, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

// multipartOverhead leaves room for part headers and boundaries.
const multipartOverhead = 64 << 10

func readCover(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	file, _, err := r.FormFile(coverFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, service.ErrCoverTooLarge
		}
		return nil, ErrNoCoverFile
	}
	defer file.Close()

	// one byte over the limit is enough for the service to reject it
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, ErrNoCoverFile
	}

	return data, nil
}
