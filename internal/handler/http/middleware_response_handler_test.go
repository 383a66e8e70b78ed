// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		headers    []int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "nothing written", wantStatus: http.StatusOK},
		{name: "implicit 200", writes: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status", headers: []int{http.StatusCreated}, writes: []string{"{}"}, wantStatus: http.StatusCreated, wantSize: 2},
		{name: "second WriteHeader ignored", headers: []int{http.StatusAccepted, http.StatusInternalServerError}, wantStatus: http.StatusAccepted},
		{name: "writes accumulate", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, s := range tt.writes {
				_, _ = w.Write([]byte(s))
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())

	w.Header().Set("X-Test", "1")
	assert.Equal(t, "1", rr.Header().Get("X-Test"))
}
