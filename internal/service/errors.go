package service

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// malformed login input alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidOrExpiredToken is returned for a reset token that is unknown,
	// already used or past its expiry.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrUnauthenticated is returned by the authorization gate for any
	// missing, malformed or unverifiable bearer credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrResetDeliveryFailed is returned when the reset mail could not be
	// sent. The stored token stays valid.
	ErrResetDeliveryFailed = errors.New("reset mail delivery failed")

	ErrLibraryNotFound = errors.New("library not found or not authorized")
	ErrBookNotFound    = errors.New("book not found or not authorized")

	ErrUnsupportedCoverType = errors.New("unsupported cover type")
	ErrCoverTooLarge        = errors.New("cover is too large")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
