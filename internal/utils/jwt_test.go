package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-story-nook/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testIdentity = models.Identity{UserID: 123, Email: "reader@storynook.be"}
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "secret-key", testNow)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "reader@storynook.be", token.Email)
	assert.Equal(t, testNow.Add(time.Hour), token.ExpiresAt.Time)
	assert.Equal(t, testNow, token.IssuedAt.Time)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity, time.Hour, "key"},
		{"zero duration", "iss", testIdentity, 0, "key"},
		{"empty key", "iss", testIdentity, time.Hour, ""},
		{"no user", "iss", models.Identity{Email: "x@y.z"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key, testNow)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", testIdentity, 5*time.Minute, "secret-key", testNow)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer", testNow.Add(time.Minute))

	require.NoError(t, err)
	assert.Equal(t, testIdentity, parsed.Identity())
	assert.Equal(t, generated.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, _ := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "correct-key", testNow)

	_, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "test-issuer", testNow)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, _ := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "key", testNow)

	_, err := ValidateAndParseJWTToken(generated.SignedString, "key", "test-issuer", testNow.Add(2*time.Hour))

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, _ := GenerateJWTToken("real-issuer", testIdentity, time.Hour, "key", testNow)

	_, err := ValidateAndParseJWTToken(generated.SignedString, "key", "fake-issuer", testNow)

	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		UserID: 1,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", testNow)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_MissingUser(t *testing.T) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", testNow)

	assert.ErrorIs(t, err, ErrInvalidTokenClaims)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", testNow)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorization},
		{name: "token only", header: "abc", wantErr: ErrInvalidAuthorization},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorization},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrUnsupportedAuthScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
