package models

// Identity is the caller resolved from a verified session token.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
