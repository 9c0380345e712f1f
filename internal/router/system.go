package router

import (
	"github.com/deppfellow/recipes-api/internal/handler"
	"github.com/deppfellow/recipes-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// recipes resources: health, docs UI and the embedded static files.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
