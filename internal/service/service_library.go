package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/models"
)

type libraryService struct {
	libraryRepository store.LibraryRepository

	logger *logger.Logger
}

// NewLibraryService returns a LibraryService that trusts its input. Wrap it
// with [NewLibraryValidationService] before exposing it to requests.
func NewLibraryService(libraryRepository store.LibraryRepository, logger *logger.Logger) LibraryService {
	return &libraryService{
		libraryRepository: libraryRepository,
		logger:            logger,
	}
}

func (l *libraryService) CreateLibrary(ctx context.Context, userID int64, in models.LibraryInput) (models.Library, error) {
	library, err := l.libraryRepository.CreateLibrary(ctx, userID, in.Name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error creating library")
		return models.Library{}, fmt.Errorf("error creating library: %w", err)
	}

	return library, nil
}

func (l *libraryService) ListLibraries(ctx context.Context, userID int64) ([]models.Library, error) {
	libraries, err := l.libraryRepository.ListLibraries(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error listing libraries")
		return nil, fmt.Errorf("error listing libraries: %w", err)
	}

	return libraries, nil
}

func (l *libraryService) RenameLibrary(ctx context.Context, userID, libraryID int64, in models.LibraryInput) (models.Library, error) {
	library, err := l.libraryRepository.RenameLibrary(ctx, userID, libraryID, in.Name)
	if err != nil {
		return models.Library{}, l.libraryError(ctx, err, "error renaming library")
	}

	return library, nil
}

func (l *libraryService) DeleteLibrary(ctx context.Context, userID, libraryID int64) error {
	if err := l.libraryRepository.DeleteLibrary(ctx, userID, libraryID); err != nil {
		return l.libraryError(ctx, err, "error deleting library")
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("library_id", libraryID).Msg("library deleted")
	return nil
}

// libraryError hides whether a missing library does not exist or belongs to
// someone else.
func (l *libraryService) libraryError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, store.ErrLibraryNotFound) {
		return ErrLibraryNotFound
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
