package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

// LibraryValidationService sanitizes and validates library input before
// handing it to the wrapped LibraryService.
type LibraryValidationService struct {
	inner     LibraryService
	validator validators.Validator
	sanitizer *validators.Sanitizer
}

func NewLibraryValidationService(validator validators.Validator, sanitizer *validators.Sanitizer) LibraryServiceWrapper {
	return &LibraryValidationService{
		validator: validator,
		sanitizer: sanitizer,
	}
}

func (v *LibraryValidationService) CreateLibrary(ctx context.Context, userID int64, in models.LibraryInput) (models.Library, error) {
	in = v.sanitizer.Library(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Library{}, fmt.Errorf("error during library validation before saving: %w", err)
	}

	return v.inner.CreateLibrary(ctx, userID, in)
}

func (v *LibraryValidationService) ListLibraries(ctx context.Context, userID int64) ([]models.Library, error) {
	return v.inner.ListLibraries(ctx, userID)
}

func (v *LibraryValidationService) RenameLibrary(ctx context.Context, userID, libraryID int64, in models.LibraryInput) (models.Library, error) {
	in = v.sanitizer.Library(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Library{}, fmt.Errorf("error during library validation before renaming: %w", err)
	}

	return v.inner.RenameLibrary(ctx, userID, libraryID, in)
}

func (v *LibraryValidationService) DeleteLibrary(ctx context.Context, userID, libraryID int64) error {
	return v.inner.DeleteLibrary(ctx, userID, libraryID)
}

func (v *LibraryValidationService) Wrap(inner LibraryService) LibraryService {
	v.inner = inner
	return v
}
