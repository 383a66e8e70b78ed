package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound integrations (mail, billing).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL with the given per-request
// timeout. Transport errors are retried once.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("User-Agent", "go-story-nook")

	return &HTTPClient{Client: client}
}
