package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/models"
)

// MaxCoverSize is the default limit for cover images, in bytes.
const MaxCoverSize = 5 << 20

// coverExtensions maps the accepted sniffed content types to file extensions.
var coverExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// KeyGenerator produces unique object keys.
type KeyGenerator interface {
	Generate() string
}

type bookService struct {
	libraryRepository store.LibraryRepository
	bookRepository    store.BookRepository
	coverStorage      store.CoverStorage
	keys              KeyGenerator
	maxCoverSize      int64

	logger *logger.Logger
}

// NewBookService returns a BookService that checks library ownership on every
// call but trusts its input otherwise. A non-positive maxCoverSize falls back
// to [MaxCoverSize].
func NewBookService(libraryRepository store.LibraryRepository, bookRepository store.BookRepository,
	coverStorage store.CoverStorage, keys KeyGenerator, maxCoverSize int64, logger *logger.Logger) BookService {
	if maxCoverSize <= 0 {
		maxCoverSize = MaxCoverSize
	}

	return &bookService{
		libraryRepository: libraryRepository,
		bookRepository:    bookRepository,
		coverStorage:      coverStorage,
		keys:              keys,
		maxCoverSize:      maxCoverSize,
		logger:            logger,
	}
}

func (b *bookService) CreateBook(ctx context.Context, userID, libraryID int64, in models.BookInput) (models.Book, error) {
	if err := b.checkOwnership(ctx, userID, libraryID); err != nil {
		return models.Book{}, err
	}

	book, err := b.bookRepository.CreateBook(ctx, libraryID, in)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("library_id", libraryID).Msg("error creating book")
		return models.Book{}, fmt.Errorf("error creating book: %w", err)
	}

	return book, nil
}

func (b *bookService) ListBooks(ctx context.Context, userID, libraryID int64) ([]models.Book, error) {
	if err := b.checkOwnership(ctx, userID, libraryID); err != nil {
		return nil, err
	}

	books, err := b.bookRepository.ListBooks(ctx, libraryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("library_id", libraryID).Msg("error listing books")
		return nil, fmt.Errorf("error listing books: %w", err)
	}

	return books, nil
}

func (b *bookService) UpdateBook(ctx context.Context, userID, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	if err := b.checkOwnership(ctx, userID, libraryID); err != nil {
		return models.Book{}, err
	}

	book, err := b.bookRepository.UpdateBook(ctx, libraryID, bookID, upd)
	if err != nil {
		return models.Book{}, b.bookError(ctx, err, "error updating book")
	}

	return book, nil
}

func (b *bookService) DeleteBook(ctx context.Context, userID, libraryID, bookID int64) error {
	if err := b.checkOwnership(ctx, userID, libraryID); err != nil {
		return err
	}

	if err := b.bookRepository.DeleteBook(ctx, libraryID, bookID); err != nil {
		return b.bookError(ctx, err, "error deleting book")
	}

	return nil
}

// UploadCover stores data as the cover of the book and saves its URL.
//
// The content type is sniffed from the bytes; only jpeg, png and webp are
// accepted. Ownership and existence are checked before anything is uploaded.
func (b *bookService) UploadCover(ctx context.Context, userID, libraryID, bookID int64, data []byte) (models.Book, error) {
	if int64(len(data)) > b.maxCoverSize {
		return models.Book{}, ErrCoverTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := coverExtensions[contentType]
	if !ok {
		return models.Book{}, fmt.Errorf("%w: %s", ErrUnsupportedCoverType, contentType)
	}

	if err := b.checkOwnership(ctx, userID, libraryID); err != nil {
		return models.Book{}, err
	}

	if _, err := b.bookRepository.FindBook(ctx, libraryID, bookID); err != nil {
		return models.Book{}, b.bookError(ctx, err, "error finding book")
	}

	key := fmt.Sprintf("covers/%s.%s", b.keys.Generate(), ext)
	url, err := b.coverStorage.PutCover(ctx, key, models.Cover{Data: data, ContentType: contentType, Extension: ext})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("book_id", bookID).Msg("error uploading cover")
		return models.Book{}, fmt.Errorf("error uploading cover: %w", err)
	}

	book, err := b.bookRepository.SetCoverURL(ctx, libraryID, bookID, url)
	if err != nil {
		return models.Book{}, b.bookError(ctx, err, "error saving cover url")
	}

	logger.FromContext(ctx).Info().Int64("book_id", bookID).Str("key", key).Msg("cover uploaded")
	return book, nil
}

func (b *bookService) checkOwnership(ctx context.Context, userID, libraryID int64) error {
	if _, err := b.libraryRepository.FindLibrary(ctx, userID, libraryID); err != nil {
		if errors.Is(err, store.ErrLibraryNotFound) {
			return ErrLibraryNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("library_id", libraryID).Msg("error checking library ownership")
		return fmt.Errorf("error checking library ownership: %w", err)
	}

	return nil
}

func (b *bookService) bookError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, store.ErrBookNotFound) {
		return ErrBookNotFound
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
