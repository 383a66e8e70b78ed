package service

import (
	"context"

	"github.com/MKhiriev/go-story-nook/models"
)

// AuthService registers and logs in users and issues and verifies their
// session tokens.
type AuthService interface {
	// Register creates an account and returns it with a fresh session token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)

	// Login returns the account and a fresh token, or [ErrInvalidCredentials]
	// whatever the reason of the failure.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)

	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)

	// ParseToken verifies tokenString; every failure is [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves an Authorization header value to the caller.
	// Every failure wraps [ErrUnauthenticated].
	Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error)
}

// PasswordResetService runs the forgot/reset password flow.
type PasswordResetService interface {
	// RequestReset issues a reset link to email if it belongs to an account.
	// An unknown email is not an error.
	RequestReset(ctx context.Context, email string) error

	// ConsumeReset sets newPassword if token is still valid and invalidates
	// the token.
	ConsumeReset(ctx context.Context, token, newPassword string) error

	// SweepExpiredTokens clears expired tokens and reports how many.
	SweepExpiredTokens(ctx context.Context) (int64, error)
}

// LibraryService manages the libraries of a user.
type LibraryService interface {
	CreateLibrary(ctx context.Context, userID int64, in models.LibraryInput) (models.Library, error)
	ListLibraries(ctx context.Context, userID int64) ([]models.Library, error)
	RenameLibrary(ctx context.Context, userID, libraryID int64, in models.LibraryInput) (models.Library, error)
	DeleteLibrary(ctx context.Context, userID, libraryID int64) error
}

// BookService manages books. Every call checks that the library belongs to
// userID first.
type BookService interface {
	CreateBook(ctx context.Context, userID, libraryID int64, in models.BookInput) (models.Book, error)
	ListBooks(ctx context.Context, userID, libraryID int64) ([]models.Book, error)
	UpdateBook(ctx context.Context, userID, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, userID, libraryID, bookID int64) error
	UploadCover(ctx context.Context, userID, libraryID, bookID int64, data []byte) (models.Book, error)
}

// BillingService relays checkout and webhook traffic to the payment provider.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, identity models.Identity, req models.CheckoutRequest) (models.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (models.BillingEvent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// LibraryServiceWrapper decorates a LibraryService, e.g. with input
// validation.
type LibraryServiceWrapper interface {
	Wrap(LibraryService) LibraryService
}

// BookServiceWrapper decorates a BookService.
type BookServiceWrapper interface {
	Wrap(BookService) BookService
}
