package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"

	"ridewise/internal/http/handlers"
	"ridewise/internal/maps"
	"ridewise/internal/modules/pricing"
	"ridewise/internal/service"
	"ridewise/internal/types"
)

type stubBooker struct {
	resp  *service.RideResponse
	err   error
	query service.RideQuery
	calls int
}

func (s *stubBooker) Book(_ context.Context, q service.RideQuery) (*service.RideResponse, error) {
	s.calls++
	s.query = q
	return s.resp, s.err
}

type stubCatalog struct {
	point     types.Point
	end       types.Point
	productID string
}

func (s *stubCatalog) Products(_ context.Context, p types.Point) ([]pricing.Product, pricing.Source) {
	s.point = p
	return pricing.MockProducts(), pricing.SourceMock
}

func (s *stubCatalog) PriceEstimates(_ context.Context, start, end types.Point) ([]pricing.PriceEstimate, pricing.Source) {
	s.point, s.end = start, end
	return pricing.MockPriceEstimates(), pricing.SourceMock
}

func (s *stubCatalog) TimeEstimates(_ context.Context, start types.Point, productID string) ([]pricing.TimeEstimate, pricing.Source) {
	s.point, s.productID = start, productID
	return []pricing.TimeEstimate{{ProductID: "a1", DisplayName: "UberGo", Estimate: 240}}, pricing.SourceLive
}

type stubPlaces struct {
	predictions []maps.Prediction
	err         error
	input       string
}

func (s *stubPlaces) Autocomplete(_ context.Context, input string) ([]maps.Prediction, error) {
	s.input = input
	return s.predictions, s.err
}

func buildTestRouter(booker handlers.RideBooker, catalog handlers.PricingCatalog, places handlers.PlaceFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/book-ride", handlers.NewRideHandler(booker).BookRide)

	ph := handlers.NewPricingHandler(catalog)
	r.GET("/products", ph.Products)
	r.GET("/price-estimates", ph.PriceEstimates)
	r.GET("/time-estimates", ph.TimeEstimates)

	r.GET("/autocomplete", handlers.NewPlacesHandler(places).Autocomplete)

	meta := handlers.NewMetaHandler("1.2.3")
	r.GET("/", meta.Root)
	r.GET("/healthz", meta.Healthz)
	r.NoRoute(handlers.NotFound)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestBookRide_OK(t *testing.T) {
	booker := &stubBooker{resp: &service.RideResponse{AISuggestion: "enjoy"}}
	r := buildTestRouter(booker, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodPost, "/book-ride", map[string]any{
		"source":      "  Mumbai ",
		"destination": "Pune",
		"product_id":  "a1",
		"mode":        "transit",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "enjoy", decode(t, w)["ai_suggestion"])
	assert.Equal(t, service.RideQuery{
		Source:      "Mumbai",
		Destination: "Pune",
		ProductID:   "a1",
		Mode:        gmaps.TravelModeTransit,
	}, booker.query)
}

func TestBookRide_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"invalid json", "{"},
		{"missing destination", map[string]any{"source": "Mumbai"}},
		{"missing source", map[string]any{"destination": "Pune"}},
		{"blank source", map[string]any{"source": "   ", "destination": "Pune"}},
		{"wrong type", map[string]any{"source": 12, "destination": "Pune"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booker := &stubBooker{}
			r := buildTestRouter(booker, &stubCatalog{}, &stubPlaces{})

			w := doRequest(r, http.MethodPost, "/book-ride", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
			assert.Zero(t, booker.calls)
		})
	}
}

func TestBookRide_RouteNotFound(t *testing.T) {
	booker := &stubBooker{err: &service.RouteNotFoundError{Source: "Mumbai", Destination: "Pune"}}
	r := buildTestRouter(booker, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodPost, "/book-ride", map[string]any{"source": "Mumbai", "destination": "Pune"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found between Mumbai and Pune"}`, w.Body.String())
}

func TestBookRide_UnexpectedError(t *testing.T) {
	booker := &stubBooker{err: errors.New("boom")}
	r := buildTestRouter(booker, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodPost, "/book-ride", map[string]any{"source": "Mumbai", "destination": "Pune"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestProducts(t *testing.T) {
	catalog := &stubCatalog{}
	r := buildTestRouter(&stubBooker{}, catalog, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/products?latitude=19.076&longitude=72.8777", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock", w.Header().Get(handlers.SourceHeader))
	assert.Len(t, decode(t, w)["products"], 3)
	assert.Equal(t, types.Point{Lat: 19.076, Lng: 72.8777}, catalog.point)
}

func TestProducts_ZeroCoordinatesAccepted(t *testing.T) {
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/products?latitude=0&longitude=0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCoordinateQueries_BadRequest(t *testing.T) {
	paths := []string{
		"/products",
		"/products?latitude=19.076",
		"/products?latitude=abc&longitude=72.8",
		"/products?latitude=91&longitude=72.8",
		"/time-estimates?longitude=72.8",
		"/price-estimates?start_latitude=19&start_longitude=72&end_latitude=18",
		"/price-estimates?start_latitude=19&start_longitude=72&end_latitude=18&end_longitude=200",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{})
			w := doRequest(r, http.MethodGet, p, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestPriceEstimates(t *testing.T) {
	catalog := &stubCatalog{}
	r := buildTestRouter(&stubBooker{}, catalog, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/price-estimates?start_latitude=19.076&start_longitude=72.8777&end_latitude=18.5204&end_longitude=73.8567", nil)

	require.Equal(t, http.StatusOK, w.Code)
	prices := decode(t, w)["prices"].([]any)
	require.Len(t, prices, 3)
	assert.Equal(t, "UberX", prices[0].(map[string]any)["display_name"])
	assert.Equal(t, types.Point{Lat: 18.5204, Lng: 73.8567}, catalog.end)
}

func TestTimeEstimates_PassesProductID(t *testing.T) {
	catalog := &stubCatalog{}
	r := buildTestRouter(&stubBooker{}, catalog, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/time-estimates?latitude=19.076&longitude=72.8777&product_id=a1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", w.Header().Get(handlers.SourceHeader))
	assert.JSONEq(t, `{"times":[{"product_id":"a1","display_name":"UberGo","estimate":240}]}`, w.Body.String())
	assert.Equal(t, "a1", catalog.productID)
}

func TestAutocomplete(t *testing.T) {
	places := &stubPlaces{predictions: []maps.Prediction{{Description: "Pune, Maharashtra, India", PlaceID: "pune"}}}
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, places)

	w := doRequest(r, http.MethodGet, "/autocomplete?input_text=Pun", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pun", places.input)
	suggestions := decode(t, w)["suggestions"].([]any)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "pune", suggestions[0].(map[string]any)["place_id"])
}

func TestAutocomplete_EmptyList(t *testing.T) {
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{predictions: []maps.Prediction{}})

	w := doRequest(r, http.MethodGet, "/autocomplete?input_text=", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, w.Body.String())
}

func TestAutocomplete_MissingParam(t *testing.T) {
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/autocomplete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAutocomplete_NotConfigured(t *testing.T) {
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{err: maps.ErrNotConfigured})

	w := doRequest(r, http.MethodGet, "/autocomplete?input_text=Pune", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Google Maps API not configured"}`, w.Body.String())
}

func TestMeta(t *testing.T) {
	r := buildTestRouter(&stubBooker{}, &stubCatalog{}, &stubPlaces{})

	w := doRequest(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, handlers.ServiceName, body["message"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "/api/book-ride", body["endpoints"].(map[string]any)["book_ride"])

	w = doRequest(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = doRequest(r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}
