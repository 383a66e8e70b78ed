package validators

import (
	"strings"

	"github.com/MKhiriev/go-story-nook/models"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from user-supplied text before it is stored.
// It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer backed by bluemonday's strict policy:
// every tag is removed, script and style bodies included.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text returns str without markup, trimmed. The result is HTML-escaped text:
// "Tom & Jerry" is stored as "Tom &amp; Jerry" and encoded markup stays encoded.
func (s *Sanitizer) Text(str string) string {
	return strings.TrimSpace(s.policy.Sanitize(str))
}

func (s *Sanitizer) textPtr(str *string) *string {
	if str == nil {
		return nil
	}
	clean := s.Text(*str)
	return &clean
}

func (s *Sanitizer) Library(in models.LibraryInput) models.LibraryInput {
	in.Name = s.Text(in.Name)
	return in
}

func (s *Sanitizer) Book(in models.BookInput) models.BookInput {
	in.Title = s.Text(in.Title)
	in.Author = s.Text(in.Author)
	in.ISBN = s.textPtr(in.ISBN)
	in.Genre = s.textPtr(in.Genre)
	return in
}

func (s *Sanitizer) BookUpdate(in models.BookUpdate) models.BookUpdate {
	in.Title = s.textPtr(in.Title)
	in.Author = s.textPtr(in.Author)
	in.ISBN = s.textPtr(in.ISBN)
	in.Genre = s.textPtr(in.Genre)
	return in
}
