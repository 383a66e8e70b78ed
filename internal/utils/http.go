package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// ErrInvalidJSONBody is returned by DecodeJSON for bodies that are not a
// single JSON value.
var ErrInvalidJSONBody = errors.New("invalid JSON body")

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes a JSON request body of at most maxBytes into dst.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any, maxBytes int64) error {
	body := io.LimitReader(r.Body, maxBytes)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSONBody)
	}
	return nil
}

// ClientIP returns the host part of r.RemoteAddr. Forwarding headers are
// honoured only when chi's RealIP middleware has rewritten RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
