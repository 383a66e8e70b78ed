package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, seen
}

func TestWithTraceID(t *testing.T) {
	h := newTestHandler(newTestServices())

	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "reuses caller id", incoming: "abc-123", wantReuse: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "keeps id at the size limit", incoming: strings.Repeat("b", maxTraceIDLength), wantReuse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := runTraceID(h, tt.incoming)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace id should be a uuid: %q", got)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(newTestServices())

	seen := make(map[string]struct{})
	for range 20 {
		rr, _ := runTraceID(h, "")
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 20)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(newTestServices(), nil, nil, nil, config.Server{}, logger.NewWriterLogger("test", &buf))

	_, req := runTraceID(h, "trace-42")
	require.NotNil(t, req)

	logger.FromRequest(req).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}
