package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/models"
)

type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func scanBook(row rowScanner) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.BookID, &b.LibraryID, &b.Title, &b.Author, &b.ISBN, &b.Genre, &b.Rating, &b.CoverURL, &b.CreatedAt)
	return b, err
}

func (r *bookRepository) CreateBook(ctx context.Context, libraryID int64, in models.BookInput) (models.Book, error) {
	return r.queryOne(ctx, "CreateBook", createBook, libraryID, in.Title, in.Author, in.ISBN, in.Genre, in.Rating)
}

// UpdateBook applies a partial update built from the non-nil fields of upd.
func (r *bookRepository) UpdateBook(ctx context.Context, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	query, args, err := buildUpdateBookQuery(libraryID, bookID, upd)
	if err != nil {
		return models.Book{}, err
	}
	return r.queryOne(ctx, "UpdateBook", query, args...)
}

func (r *bookRepository) FindBook(ctx context.Context, libraryID, bookID int64) (models.Book, error) {
	return r.queryOne(ctx, "FindBook", findBook, bookID, libraryID)
}

func (r *bookRepository) SetCoverURL(ctx context.Context, libraryID, bookID int64, url string) (models.Book, error) {
	return r.queryOne(ctx, "SetCoverURL", setCoverURL, url, bookID, libraryID)
}

func (r *bookRepository) queryOne(ctx context.Context, op, query string, args ...any) (models.Book, error) {
	var book models.Book
	err := r.db.withRetry(ctx, op, func() error {
		var scanErr error
		book, scanErr = scanBook(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository."+op).Msg("book query failed")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// ListBooks returns the books of a library ordered by id; never nil.
func (r *bookRepository) ListBooks(ctx context.Context, libraryID int64) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, listBooks, libraryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository.ListBooks").Msg("error listing books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

func (r *bookRepository) DeleteBook(ctx context.Context, libraryID, bookID int64) error {
	res, err := r.db.ExecContext(ctx, deleteBook, bookID, libraryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
