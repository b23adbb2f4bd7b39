// README: API gateway; builds the gin engine, installs middleware, and wires handlers to services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ridewise/internal/http/handlers"
	"ridewise/internal/http/middleware"
)

type ServerDeps struct {
	Booker      handlers.RideBooker
	Pricing     handlers.PricingCatalog
	Places      handlers.PlaceFinder
	Logger      zerolog.Logger
	Metrics     *middleware.Metrics
	CORSOrigins []string
	Version     string
}

type Server struct {
	engine *gin.Engine
}

func NewServer(deps ServerDeps) *Server {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Tracing(),
		middleware.Logging(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORSOrigins),
	)
	if deps.Metrics != nil {
		engine.Use(deps.Metrics.Middleware())
	}

	registerRoutes(engine, deps)
	return &Server{engine: engine}
}

func (s *Server) Routes() http.Handler {
	return s.engine
}
