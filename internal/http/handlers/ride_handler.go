// README: Ride booking handler; validates the request and delegates to the ride booker.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ridewise/internal/maps"
	"ridewise/internal/service"
)

type RideBooker interface {
	Book(ctx context.Context, q service.RideQuery) (*service.RideResponse, error)
}

type RideHandler struct {
	booker RideBooker
}

func NewRideHandler(booker RideBooker) *RideHandler {
	return &RideHandler{booker: booker}
}

type bookRideReq struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	ProductID   string `json:"product_id"`
	Mode        string `json:"mode"`
}

// BookRide handles POST /book-ride.
func (h *RideHandler) BookRide(c *gin.Context) {
	var req bookRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "source and destination are required")
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Source == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "source and destination are required")
		return
	}

	resp, err := h.booker.Book(c.Request.Context(), service.RideQuery{
		Source:      req.Source,
		Destination: req.Destination,
		ProductID:   strings.TrimSpace(req.ProductID),
		Mode:        maps.ParseTravelMode(req.Mode),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
