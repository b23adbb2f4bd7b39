package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, c *ProviderClient, url string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	return c.Do(req)
}

func TestProviderClient_PassesThroughSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewProviderClient(ProviderClientConfig{Name: "test"})
	resp, err := get(t, c, server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, c.State())
}

func TestProviderClient_ReturnsServerErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewProviderClient(ProviderClientConfig{Name: "test"})
	resp, err := get(t, c, server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestProviderClient_DoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewProviderClient(ProviderClientConfig{Name: "test"})
	resp, err := get(t, c, server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 1, calls)
}

func TestProviderClient_OpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewProviderClient(ProviderClientConfig{Name: "test", OpenTimeout: time.Minute})
	for i := 0; i < 5; i++ {
		resp, err := get(t, c, server.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, gobreaker.StateOpen, c.State())

	_, err := get(t, c, server.URL)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 5, calls)
}

func TestProviderClient_ClientErrorsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewProviderClient(ProviderClientConfig{Name: "test"})
	for i := 0; i < 6; i++ {
		resp, err := get(t, c, server.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, gobreaker.StateClosed, c.State())
}

func TestDefaultReadyToTrip(t *testing.T) {
	assert.False(t, DefaultReadyToTrip(gobreaker.Counts{Requests: 4, TotalFailures: 4}))
	assert.False(t, DefaultReadyToTrip(gobreaker.Counts{Requests: 10, TotalFailures: 4}))
	assert.True(t, DefaultReadyToTrip(gobreaker.Counts{Requests: 10, TotalFailures: 5}))
}
