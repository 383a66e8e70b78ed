package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSignatureHeader = errors.New("invalid signature header")
	ErrSignatureMismatch      = errors.New("signature mismatch")
	ErrSignatureExpired       = errors.New("signature timestamp outside tolerance")
)

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// SignPayload returns the v1 signature of payload sent at timestamp:
// hex(HMAC-SHA256(secret, "<timestamp>.<payload>")).
func SignPayload(payload []byte, timestamp int64, secret string) string {
	signed := make([]byte, 0, len(payload)+21)
	signed = strconv.AppendInt(signed, timestamp, 10)
	signed = append(signed, '.')
	signed = append(signed, payload...)
	return hex.EncodeToString(hashBytes(signed, secret))
}

// SignatureHeader builds a header value in the "t=<ts>,v1=<sig>" format.
func SignatureHeader(payload []byte, timestamp int64, secret string) string {
	return "t=" + strconv.FormatInt(timestamp, 10) + ",v1=" + SignPayload(payload, timestamp, secret)
}

// VerifySignatureHeader checks a "t=<ts>,v1=<sig>[,v1=<sig>...]" header
// against payload. Any matching v1 signature is accepted as long as the
// timestamp is within tolerance of now.
func VerifySignatureHeader(header string, payload []byte, secret string, now time.Time, tolerance time.Duration) error {
	var (
		timestamp  int64
		hasTS      bool
		signatures []string
	)

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return ErrInvalidSignatureHeader
			}
			timestamp, hasTS = ts, true
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if !hasTS || len(signatures) == 0 {
		return ErrInvalidSignatureHeader
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return ErrSignatureExpired
		}
	}

	expected := []byte(SignPayload(payload, timestamp, secret))
	for _, sig := range signatures {
		if hmac.Equal(expected, []byte(sig)) {
			return nil
		}
	}

	return ErrSignatureMismatch
}
