package validators

import (
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

const (
	// MinPasswordLength applies to registration and password reset alike.
	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72

	MaxNameLength  = 255
	MaxISBNLength  = 20
	MaxGenreLength = 100
	MinRating      = 0.0
	MaxRating      = 5.0
)

// emailRule checks the address format only; no DNS lookups.
var emailRule = validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")

// uuidRule accepts the canonical 36-character form in either case.
var uuidRule = validation.NewStringRule(isCanonicalUUID, "must be a valid UUID")

func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

var passwordRules = []validation.Rule{
	validation.Required,
	validation.RuneLength(MinPasswordLength, 0),
	validation.Length(0, MaxPasswordLength),
}

var ratingRules = []validation.Rule{
	validation.Min(MinRating),
	validation.Max(MaxRating),
}
