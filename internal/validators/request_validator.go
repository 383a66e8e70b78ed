package validators

import (
	"context"

	"github.com/MKhiriev/go-story-nook/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Field scopes accepted by RequestValidator.Validate.
const (
	FieldEmail = "email"

	// FieldPassword applies the strength rules used on registration.
	FieldPassword = "password"

	// FieldPasswordPresent only requires a non-empty password (login).
	FieldPasswordPresent = "password_present"

	FieldToken       = "token"
	FieldNewPassword = "newPassword"
	FieldName        = "name"
	FieldPriceID     = "priceId"
)

// RequestValidator validates the JSON request models of the HTTP API.
type RequestValidator struct {
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Field scoping is honoured for credentials only.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value)

	case models.LibraryInput:
		return v.validateLibrary(value)
	case *models.LibraryInput:
		return v.validateLibrary(*value)

	case models.BookInput:
		return v.validateBook(value)
	case *models.BookInput:
		return v.validateBook(*value)

	case models.BookUpdate:
		return v.validateBookUpdate(value)
	case *models.BookUpdate:
		return v.validateBookUpdate(*value)

	case models.CheckoutRequest:
		return v.validateCheckout(value)
	case *models.CheckoutRequest:
		return v.validateCheckout(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials defaults to the registration rules (email, password).
func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldEmail:
			rules = append(rules, validation.Field(&c.Email, validation.Required, validation.Length(0, MaxNameLength), emailRule))
		case FieldPassword:
			rules = append(rules, validation.Field(&c.Password, passwordRules...))
		case FieldPasswordPresent:
			rules = append(rules, validation.Field(&c.Password, validation.Required))
		default:
			return ErrUnknownField
		}
	}

	return fromOzzo(validation.ValidateStruct(&c, rules...))
}

func (v *RequestValidator) validateForgotPassword(r models.ForgotPasswordRequest) error {
	return fromOzzo(validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, emailRule),
	))
}

func (v *RequestValidator) validateResetPassword(r models.ResetPasswordRequest) error {
	return fromOzzo(validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required, uuidRule),
		validation.Field(&r.NewPassword, passwordRules...),
	))
}

func (v *RequestValidator) validateLibrary(l models.LibraryInput) error {
	return fromOzzo(validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
	))
}

func (v *RequestValidator) validateBook(b models.BookInput) error {
	return fromOzzo(validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&b.Author, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&b.ISBN, validation.RuneLength(0, MaxISBNLength)),
		validation.Field(&b.Genre, validation.RuneLength(0, MaxGenreLength)),
		validation.Field(&b.Rating, ratingRules...),
	))
}

func (v *RequestValidator) validateBookUpdate(u models.BookUpdate) error {
	if u.IsEmpty() {
		return NewValidationError("body", "at least one field must be provided")
	}

	return fromOzzo(validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty, validation.RuneLength(0, MaxNameLength)),
		validation.Field(&u.Author, validation.NilOrNotEmpty, validation.RuneLength(0, MaxNameLength)),
		validation.Field(&u.ISBN, validation.RuneLength(0, MaxISBNLength)),
		validation.Field(&u.Genre, validation.RuneLength(0, MaxGenreLength)),
		validation.Field(&u.Rating, ratingRules...),
	))
}

func (v *RequestValidator) validateCheckout(r models.CheckoutRequest) error {
	return fromOzzo(validation.ValidateStruct(&r,
		validation.Field(&r.PriceID, validation.Required),
	))
}
