// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func methodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(r.Method)) }

	router.Get("/books", ok)
	router.Post("/books", ok)
	router.Delete("/books/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := methodRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/books", http.StatusOK},
		{http.MethodPost, "/books", http.StatusOK},
		{http.MethodDelete, "/books/5", http.StatusOK},
		{http.MethodPut, "/books", http.StatusNotFound},
		{http.MethodPatch, "/books", http.StatusNotFound},
		{http.MethodGet, "/books/5", http.StatusNotFound},
		{http.MethodGet, "/authors", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.method, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_UniformBody(t *testing.T) {
	rr := httptest.NewRecorder()
	methodRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/books", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, app.MsgNotFound, decodeBody[models.ErrorResponse](t, rr).Error)
}
