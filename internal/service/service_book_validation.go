package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

// BookValidationService sanitizes and validates book input before handing it
// to the wrapped BookService.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
	sanitizer *validators.Sanitizer
}

func NewBookValidationService(validator validators.Validator, sanitizer *validators.Sanitizer) BookServiceWrapper {
	return &BookValidationService{
		validator: validator,
		sanitizer: sanitizer,
	}
}

func (v *BookValidationService) CreateBook(ctx context.Context, userID, libraryID int64, in models.BookInput) (models.Book, error) {
	in = v.sanitizer.Book(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Book{}, fmt.Errorf("error during book validation before saving: %w", err)
	}

	return v.inner.CreateBook(ctx, userID, libraryID, in)
}

func (v *BookValidationService) ListBooks(ctx context.Context, userID, libraryID int64) ([]models.Book, error) {
	return v.inner.ListBooks(ctx, userID, libraryID)
}

func (v *BookValidationService) UpdateBook(ctx context.Context, userID, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	upd = v.sanitizer.BookUpdate(upd)
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.Book{}, fmt.Errorf("error during book validation before updating: %w", err)
	}

	return v.inner.UpdateBook(ctx, userID, libraryID, bookID, upd)
}

func (v *BookValidationService) DeleteBook(ctx context.Context, userID, libraryID, bookID int64) error {
	return v.inner.DeleteBook(ctx, userID, libraryID, bookID)
}

func (v *BookValidationService) UploadCover(ctx context.Context, userID, libraryID, bookID int64, data []byte) (models.Book, error) {
	return v.inner.UploadCover(ctx, userID, libraryID, bookID, data)
}

func (v *BookValidationService) Wrap(inner BookService) BookService {
	v.inner = inner
	return v
}
