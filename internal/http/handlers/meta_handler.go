// README: Liveness endpoints and the root banner.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ServiceName = "RideWise API"

type MetaHandler struct {
	version string
}

func NewMetaHandler(version string) *MetaHandler {
	return &MetaHandler{version: version}
}

// Root handles GET /.
func (h *MetaHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": ServiceName,
		"version": h.version,
		"status":  "running",
		"endpoints": gin.H{
			"health":          "/api/",
			"book_ride":       "/api/book-ride",
			"products":        "/api/products",
			"price_estimates": "/api/price-estimates",
			"time_estimates":  "/api/time-estimates",
			"autocomplete":    "/api/autocomplete",
		},
	})
}

// APIRoot handles GET /api/.
func (h *MetaHandler) APIRoot(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok", "message": ServiceName + " v" + h.version})
}

// Healthz is a plain-text probe.
func (h *MetaHandler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// NotFound answers unknown routes in the API's error shape.
func NotFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, "not found")
}
