// README: Place autocomplete handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridewise/internal/maps"
)

type PlaceFinder interface {
	Autocomplete(ctx context.Context, input string) ([]maps.Prediction, error)
}

type PlacesHandler struct {
	places PlaceFinder
}

func NewPlacesHandler(places PlaceFinder) *PlacesHandler {
	return &PlacesHandler{places: places}
}

type autocompleteQuery struct {
	InputText *string `form:"input_text" binding:"required"`
}

// Autocomplete handles GET /autocomplete.
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	var q autocompleteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "input_text is required")
		return
	}

	suggestions, err := h.places.Autocomplete(c.Request.Context(), *q.InputText)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": suggestions})
}
