package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-story-nook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and the password-reset side channel.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetPasswordHash, ClearResetToken and FindUserByValidResetToken are the
	// step-by-step form of ConsumeResetToken. The reset flow uses the single
	// conditional update; these serve callers that change one field at a time.
	SetPasswordHash(ctx context.Context, userID int64, hash string) error

	// SetResetToken stores token for the user, replacing any pending one.
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error
	ClearResetToken(ctx context.Context, userID int64) error

	// FindUserByValidResetToken matches token exactly and requires its expiry
	// to be strictly after now.
	FindUserByValidResetToken(ctx context.Context, token string, now time.Time) (models.User, error)

	// ConsumeResetToken sets the new hash and clears the token in one
	// conditional statement. At most one caller wins per token.
	ConsumeResetToken(ctx context.Context, token, hash string, now time.Time) (models.User, error)

	// ClearExpiredResetTokens clears every token that expired at or before now
	// and returns the number of affected users.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// LibraryRepository stores libraries. Every method is scoped by owner.
type LibraryRepository interface {
	CreateLibrary(ctx context.Context, userID int64, name string) (models.Library, error)
	ListLibraries(ctx context.Context, userID int64) ([]models.Library, error)
	FindLibrary(ctx context.Context, userID, libraryID int64) (models.Library, error)
	RenameLibrary(ctx context.Context, userID, libraryID int64, name string) (models.Library, error)
	DeleteLibrary(ctx context.Context, userID, libraryID int64) error
}

// BookRepository stores books. Every method is scoped by library; callers
// check library ownership first.
type BookRepository interface {
	CreateBook(ctx context.Context, libraryID int64, in models.BookInput) (models.Book, error)
	ListBooks(ctx context.Context, libraryID int64) ([]models.Book, error)
	FindBook(ctx context.Context, libraryID, bookID int64) (models.Book, error)
	UpdateBook(ctx context.Context, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, libraryID, bookID int64) error
	SetCoverURL(ctx context.Context, libraryID, bookID int64, url string) (models.Book, error)
}

// CoverStorage uploads cover images and returns their public URL.
type CoverStorage interface {
	PutCover(ctx context.Context, key string, cover models.Cover) (string, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
