// README: Base handler utilities (JSON helpers, error mapping, query binding).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridewise/internal/maps"
	"ridewise/internal/service"
	"ridewise/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	var notFound *service.RouteNotFoundError
	switch {
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, maps.ErrNotConfigured):
		writeError(c, http.StatusInternalServerError, "Google Maps API not configured")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// coordQuery binds a required latitude/longitude pair from the query string.
// Pointers let a literal 0 pass the required check.
type coordQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
}

func (q coordQuery) point() types.Point {
	return types.Point{Lat: *q.Latitude, Lng: *q.Longitude}
}

func bindPoint(c *gin.Context) (types.Point, bool) {
	var q coordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "latitude and longitude are required numbers")
		return types.Point{}, false
	}
	p := q.point()
	if !p.Valid() {
		writeError(c, http.StatusBadRequest, "coordinates out of range")
		return types.Point{}, false
	}
	return p, true
}
