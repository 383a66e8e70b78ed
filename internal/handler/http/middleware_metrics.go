package http

import "net/http"

// withMetrics counts responses by status code.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		h.metrics.RecordHTTPStatus(mw.statusCode())
	})
}
