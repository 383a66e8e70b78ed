package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-story-nook/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams    = errors.New("invalid params for generating JWT token")
	ErrInvalidTokenClaims    = errors.New("token claims do not identify a user")
	ErrInvalidAuthorization  = errors.New("invalid authorization header")
	ErrEmptyAuthorization    = errors.New("empty authorization header")
	ErrUnsupportedAuthScheme = errors.New("unsupported authorization scheme")
)

// GenerateJWTToken creates an HS256-signed session token for identity.
//
// The token carries iss, iat and exp registered claims plus the userId and
// email custom claims. now is the issue time.
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || identity.UserID == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer and
// expiry of tokenString as of now and returns its claims.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Token{}, ErrInvalidTokenClaims
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrEmptyAuthorization
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorization
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrUnsupportedAuthScheme
	}

	return parts[1], nil
}
