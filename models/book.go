package models

import "time"

// Book is a single entry of a library.
type Book struct {
	BookID    int64    `json:"id"`
	LibraryID int64    `json:"library_id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	ISBN      *string  `json:"isbn"`
	Genre     *string  `json:"genre"`
	Rating    *float64 `json:"rating"`
	CoverURL  *string  `json:"cover_url"`

	CreatedAt time.Time `json:"created_at"`
}

// BookInput is the body of a create request.
type BookInput struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	ISBN   *string  `json:"isbn,omitempty"`
	Genre  *string  `json:"genre,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

// BookUpdate is a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title  *string  `json:"title,omitempty"`
	Author *string  `json:"author,omitempty"`
	ISBN   *string  `json:"isbn,omitempty"`
	Genre  *string  `json:"genre,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.ISBN == nil && u.Genre == nil && u.Rating == nil
}

// Cover is an uploaded cover image before it reaches object storage.
type Cover struct {
	Data        []byte
	ContentType string
	Extension   string
}
