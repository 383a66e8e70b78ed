// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the StoryNook API.
//
// Clients match on some of these strings, so they are kept in one place and
// never include error details.
package app

// Success messages.
const (
	MsgUserRegistered  = "User registered successfully"
	MsgLoginSuccessful = "Login successful"
	MsgResetLinkSent   = "If that email is in our system, a reset link has been sent."
	MsgPasswordReset   = "Your password has been reset successfully."
	MsgLibraryDeleted  = "Library deleted successfully"
	MsgBookDeleted     = "Book deleted successfully"
)

// Error messages.
const (
	// MsgInvalidCredentials is the only answer to a failed login, whatever
	// the cause.
	MsgInvalidCredentials = "Invalid credentials"

	MsgInvalidOrExpiredToken = "Invalid or expired token."
	MsgUnauthorized          = "Unauthorized"
	MsgEmailRegistered       = "Email already registered"
	MsgValidationFailed      = "Validation failed"
	MsgInvalidJSON           = "Invalid JSON was passed"
	MsgInvalidID             = "Invalid id"
	MsgLibraryNotFound       = "Library not found or not authorized"
	MsgBookNotFound          = "Book not found or not authorized"
	MsgUnsupportedCoverType  = "Only JPEG, PNG and WebP images are allowed"
	MsgCoverTooLarge         = "Cover image must be at most 5MB"
	MsgNoCoverFile           = "No cover file uploaded"
	MsgInvalidSignature      = "Invalid webhook signature"
	MsgInvalidWebhookPayload = "Invalid webhook payload"
	MsgServiceUnavailable    = "This feature is not available right now"
	MsgTooManyResetRequests  = "Too many password reset attempts, please try again later."
	MsgTooManyRequests       = "Too many requests, please try again later."
	MsgNotFound              = "Not found"

	// MsgServerError hides every unexpected failure.
	MsgServerError = "Server error. Please try again later."
)
