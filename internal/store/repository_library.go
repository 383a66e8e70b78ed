package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/models"
)

type libraryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLibraryRepository(db *DB, logger *logger.Logger) LibraryRepository {
	logger.Debug().Msg("creating library repository")
	return &libraryRepository{
		db:     db,
		logger: logger,
	}
}

func scanLibrary(row rowScanner) (models.Library, error) {
	var l models.Library
	err := row.Scan(&l.LibraryID, &l.UserID, &l.Name, &l.CreatedAt)
	return l, err
}

func (r *libraryRepository) CreateLibrary(ctx context.Context, userID int64, name string) (models.Library, error) {
	return r.queryOne(ctx, "CreateLibrary", createLibrary, userID, name)
}

func (r *libraryRepository) FindLibrary(ctx context.Context, userID, libraryID int64) (models.Library, error) {
	return r.queryOne(ctx, "FindLibrary", findLibrary, libraryID, userID)
}

func (r *libraryRepository) RenameLibrary(ctx context.Context, userID, libraryID int64, name string) (models.Library, error) {
	return r.queryOne(ctx, "RenameLibrary", renameLibrary, name, libraryID, userID)
}

func (r *libraryRepository) queryOne(ctx context.Context, op, query string, args ...any) (models.Library, error) {
	var library models.Library
	err := r.db.withRetry(ctx, op, func() error {
		var scanErr error
		library, scanErr = scanLibrary(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Library{}, ErrLibraryNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*libraryRepository."+op).Msg("library query failed")
		return models.Library{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return library, nil
}

// ListLibraries returns the user's libraries ordered by id; never nil.
func (r *libraryRepository) ListLibraries(ctx context.Context, userID int64) ([]models.Library, error) {
	query, args, err := buildListLibrariesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*libraryRepository.ListLibraries").Msg("error listing libraries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	libraries := make([]models.Library, 0)
	for rows.Next() {
		library, scanErr := scanLibrary(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		libraries = append(libraries, library)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return libraries, nil
}

// DeleteLibrary removes the library; its books go with it (ON DELETE CASCADE).
func (r *libraryRepository) DeleteLibrary(ctx context.Context, userID, libraryID int64) error {
	res, err := r.db.ExecContext(ctx, deleteLibrary, libraryID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*libraryRepository.DeleteLibrary").Msg("error deleting library")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrLibraryNotFound
	}

	return nil
}
