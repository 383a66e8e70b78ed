package store

import "errors"

// Sentinel errors returned by repository methods. Match with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registration hits the unique
	// index on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup, including
	// a reset token that is unknown, already used or expired.
	ErrNoUserWasFound = errors.New("no user was found")

	ErrLibraryNotFound = errors.New("library was not found")
	ErrBookNotFound    = errors.New("book was not found")

	// ErrCoverStorageDisabled is returned by the cover store when no bucket
	// is configured.
	ErrCoverStorageDisabled = errors.New("cover storage is not configured")
)

// Low-level database errors wrapped by repository methods.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
