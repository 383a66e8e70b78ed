package models

import "time"

// Library is a named shelf of books owned by a single user.
type Library struct {
	LibraryID int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LibraryInput is the body of create and rename requests.
type LibraryInput struct {
	Name string `json:"name"`
}
