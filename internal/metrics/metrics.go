// Package metrics collects Prometheus counters for authentication, password
// reset and HTTP traffic, and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes recorded by RecordLogin.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Recorder is what services and middlewares report to.
type Recorder interface {
	RecordRegistration()
	RecordLogin(outcome string)
	RecordResetRequested()
	RecordResetCompleted()
	RecordTokensSwept(count int64)
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus-backed [Recorder].
type Collector struct {
	registrations   prometheus.Counter
	logins          *prometheus.CounterVec
	resetsRequested prometheus.Counter
	resetsCompleted prometheus.Counter
	tokensSwept     prometheus.Counter
	httpStatus      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storynook_registrations_total",
			Help: "Number of accounts created.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storynook_logins_total",
			Help: "Number of login attempts by outcome.",
		}, []string{"outcome"}),
		resetsRequested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storynook_password_reset_requests_total",
			Help: "Number of reset links issued to known accounts.",
		}),
		resetsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storynook_password_resets_total",
			Help: "Number of passwords changed through a reset link.",
		}),
		tokensSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storynook_reset_tokens_swept_total",
			Help: "Number of expired reset tokens cleared by the sweeper.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storynook_http_responses_total",
			Help: "Number of HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.resetsRequested,
		c.resetsCompleted,
		c.tokensSwept,
		c.httpStatus,
	)

	return c
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordResetRequested() {
	c.resetsRequested.Inc()
}

func (c *Collector) RecordResetCompleted() {
	c.resetsCompleted.Inc()
}

func (c *Collector) RecordTokensSwept(count int64) {
	c.tokensSwept.Add(float64(count))
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler serves the Prometheus exposition format for gatherer. Compression
// is left to the HTTP middleware.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{DisableCompression: true})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRegistration()     {}
func (Nop) RecordLogin(string)      {}
func (Nop) RecordResetRequested()   {}
func (Nop) RecordResetCompleted()   {}
func (Nop) RecordTokensSwept(int64) {}
func (Nop) RecordHTTPStatus(int)    {}
