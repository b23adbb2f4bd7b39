// README: Uber product and estimate handlers; always answer with live or mock data.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ridewise/internal/modules/pricing"
	"ridewise/internal/types"
)

// SourceHeader reports whether pricing data is live or mock.
const SourceHeader = "X-Pricing-Source"

type PricingCatalog interface {
	Products(ctx context.Context, p types.Point) ([]pricing.Product, pricing.Source)
	PriceEstimates(ctx context.Context, start, end types.Point) ([]pricing.PriceEstimate, pricing.Source)
	TimeEstimates(ctx context.Context, start types.Point, productID string) ([]pricing.TimeEstimate, pricing.Source)
}

type PricingHandler struct {
	catalog PricingCatalog
}

func NewPricingHandler(catalog PricingCatalog) *PricingHandler {
	return &PricingHandler{catalog: catalog}
}

// Products handles GET /products.
func (h *PricingHandler) Products(c *gin.Context) {
	p, ok := bindPoint(c)
	if !ok {
		return
	}
	products, src := h.catalog.Products(c.Request.Context(), p)
	c.Header(SourceHeader, string(src))
	writeJSON(c, http.StatusOK, gin.H{"products": products})
}

type priceQuery struct {
	StartLatitude  *float64 `form:"start_latitude" binding:"required"`
	StartLongitude *float64 `form:"start_longitude" binding:"required"`
	EndLatitude    *float64 `form:"end_latitude" binding:"required"`
	EndLongitude   *float64 `form:"end_longitude" binding:"required"`
}

// PriceEstimates handles GET /price-estimates.
func (h *PricingHandler) PriceEstimates(c *gin.Context) {
	var q priceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "start and end coordinates are required numbers")
		return
	}
	start := types.Point{Lat: *q.StartLatitude, Lng: *q.StartLongitude}
	end := types.Point{Lat: *q.EndLatitude, Lng: *q.EndLongitude}
	if !start.Valid() || !end.Valid() {
		writeError(c, http.StatusBadRequest, "coordinates out of range")
		return
	}

	prices, src := h.catalog.PriceEstimates(c.Request.Context(), start, end)
	c.Header(SourceHeader, string(src))
	writeJSON(c, http.StatusOK, gin.H{"prices": prices})
}

// TimeEstimates handles GET /time-estimates.
func (h *PricingHandler) TimeEstimates(c *gin.Context) {
	p, ok := bindPoint(c)
	if !ok {
		return
	}
	times, src := h.catalog.TimeEstimates(c.Request.Context(), p, strings.TrimSpace(c.Query("product_id")))
	c.Header(SourceHeader, string(src))
	writeJSON(c, http.StatusOK, gin.H{"times": times})
}
