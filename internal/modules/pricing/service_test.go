package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridewise/internal/types"
)

var (
	mumbai = types.Point{Lat: 19.076, Lng: 72.8777}
	pune   = types.Point{Lat: 18.5204, Lng: 73.8567}
)

func TestNewService_BaseURL(t *testing.T) {
	assert.Equal(t, SandboxBaseURL, NewService(Config{SandboxMode: true}).baseURL)
	assert.Equal(t, ProductionBaseURL, NewService(Config{}).baseURL)
	assert.Equal(t, "http://local", NewService(Config{BaseURL: "http://local", SandboxMode: true}).baseURL)
}

func TestService_NoToken_UsesMock(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL})
	ctx := context.Background()

	products, src := s.Products(ctx, mumbai)
	assert.Equal(t, SourceMock, src)
	assert.Equal(t, MockProducts(), products)

	prices, src := s.PriceEstimates(ctx, mumbai, pune)
	assert.Equal(t, SourceMock, src)
	assert.Equal(t, MockPriceEstimates(), prices)

	times, src := s.TimeEstimates(ctx, mumbai, "")
	assert.Equal(t, SourceMock, src)
	assert.Equal(t, MockTimeEstimates(), times)

	assert.Equal(t, int32(0), calls.Load())
}

func TestService_Live(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token uber-token", r.Header.Get("Authorization"))
		assert.Equal(t, "en_US", r.Header.Get("Accept-Language"))
		q := r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products":
			assert.Equal(t, "19.076", q.Get("latitude"))
			assert.Equal(t, "72.8777", q.Get("longitude"))
			_, _ = w.Write([]byte(`{"products":[{"product_id":"a1","display_name":"UberGo","description":"cheap","capacity":4,"image":"x.png"}]}`))
		case "/estimates/price":
			assert.Equal(t, "19.076", q.Get("start_latitude"))
			assert.Equal(t, "18.5204", q.Get("end_latitude"))
			assert.Equal(t, "73.8567", q.Get("end_longitude"))
			_, _ = w.Write([]byte(`{"prices":[{"product_id":"a1","display_name":"UberGo","currency_code":"INR","estimate":"₹1,900-2,300","low_estimate":1900,"high_estimate":2300,"surge_multiplier":1.2,"duration":10320,"distance":92.1}]}`))
		case "/estimates/time":
			assert.Equal(t, "a1", q.Get("product_id"))
			_, _ = w.Write([]byte(`{"times":[{"product_id":"a1","display_name":"UberGo","estimate":240}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := NewService(Config{ServerToken: "uber-token", BaseURL: server.URL})
	ctx := context.Background()

	products, src := s.Products(ctx, mumbai)
	assert.Equal(t, SourceLive, src)
	require.Len(t, products, 1)
	assert.Equal(t, "UberGo", products[0].DisplayName)

	prices, src := s.PriceEstimates(ctx, mumbai, pune)
	assert.Equal(t, SourceLive, src)
	require.Len(t, prices, 1)
	assert.Equal(t, 1.2, prices[0].SurgeMultiplier)
	assert.Equal(t, "INR", prices[0].CurrencyCode)

	times, src := s.TimeEstimates(ctx, mumbai, "a1")
	assert.Equal(t, SourceLive, src)
	assert.Equal(t, []TimeEstimate{{ProductID: "a1", DisplayName: "UberGo", Estimate: 240}}, times)
}

func TestService_TimeEstimates_OmitsEmptyProductID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["product_id"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"times":[]}`))
	}))
	defer server.Close()

	s := NewService(Config{ServerToken: "uber-token", BaseURL: server.URL})
	times, src := s.TimeEstimates(context.Background(), mumbai, "")
	assert.Equal(t, SourceLive, src)
	assert.NotNil(t, times)
	assert.Empty(t, times)
}

func TestService_UpstreamFailures_UseMock(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid OAuth 2.0 credentials provided.","code":"unauthorized"}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[`))
		}},
		{"wrong shape", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"prices": "nope"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			s := NewService(Config{ServerToken: "uber-token", BaseURL: server.URL})
			prices, src := s.PriceEstimates(context.Background(), mumbai, pune)
			assert.Equal(t, SourceMock, src)
			assert.Equal(t, MockPriceEstimates(), prices)
		})
	}
}

func TestService_NetworkError_UsesMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	s := NewService(Config{ServerToken: "uber-token", BaseURL: url})
	products, src := s.Products(context.Background(), mumbai)
	assert.Equal(t, SourceMock, src)
	assert.Equal(t, MockProducts(), products)
}
