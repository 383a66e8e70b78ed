package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("https://api.example.com", 3*time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, "https://api.example.com", client.BaseURL)
	assert.Equal(t, 1, client.RetryCount)
	assert.Equal(t, "go-story-nook", client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("", time.Second)
	client2 := NewHTTPClient("", time.Second)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ping", r.URL.Path)
		assert.Equal(t, "go-story-nook", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/v1/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
