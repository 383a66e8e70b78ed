package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger attaches a logger writing to buf, as withTraceID does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := logger.NewWriterLogger("test", buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		body     string
		contains []string
	}{
		{
			name:     "ok with body",
			method:   http.MethodGet,
			target:   "/api/libraries/",
			status:   http.StatusOK,
			body:     "[]",
			contains: []string{`"method":"GET"`, `"uri":"/api/libraries/"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:     "created",
			method:   http.MethodPost,
			target:   "/api/auth/register",
			status:   http.StatusCreated,
			body:     "{}",
			contains: []string{`"method":"POST"`, `"status":201`},
		},
		{
			name:     "no body",
			method:   http.MethodDelete,
			target:   "/api/libraries/3",
			status:   http.StatusNoContent,
			contains: []string{`"status":204`, `"size":0`},
		},
		{
			name:     "query string is not logged",
			method:   http.MethodGet,
			target:   "/reset-password?token=secret-token",
			status:   http.StatusOK,
			contains: []string{`"uri":"/reset-password"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(newTestServices())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.target, &buf))

			require.Equal(t, tt.status, rr.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "secret-token")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(newTestServices())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 1024)))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":1024`)
	assert.Contains(t, buf.String(), `"client_ip":"192.0.2.1"`)
}

func TestWithLogging_DoesNotLogHeaders(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(newTestServices())

	req := requestWithLogger(http.MethodGet, "/api/auth/me", &buf)
	req.Header.Set("Authorization", "Bearer very-secret")

	h.withLogging(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "very-secret")
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(newTestServices())

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))
	})
}
