// README: HTTP route registration; the API is mounted at the root and under /api.
package http

import (
	"github.com/gin-gonic/gin"

	"ridewise/internal/http/handlers"
)

func registerRoutes(engine *gin.Engine, deps ServerDeps) {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	meta := handlers.NewMetaHandler(version)

	engine.GET("/", meta.Root)
	engine.GET("/healthz", meta.Healthz)
	engine.NoRoute(handlers.NotFound)

	api := engine.Group("/api")
	api.GET("/", meta.APIRoot)

	for _, g := range []*gin.RouterGroup{&engine.RouterGroup, api} {
		registerAPI(g, deps)
	}
}

func registerAPI(g *gin.RouterGroup, deps ServerDeps) {
	rideHandler := handlers.NewRideHandler(deps.Booker)
	g.POST("/book-ride", rideHandler.BookRide)

	pricingHandler := handlers.NewPricingHandler(deps.Pricing)
	g.GET("/products", pricingHandler.Products)
	g.GET("/price-estimates", pricingHandler.PriceEstimates)
	g.GET("/time-estimates", pricingHandler.TimeEstimates)

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	g.GET("/autocomplete", placesHandler.Autocomplete)
}
