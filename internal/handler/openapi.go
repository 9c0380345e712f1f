package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API docs UI. The page loads its scripts from a
// CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the embedded docs page uncached.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.Files.ReadFile(static.OpenAPIUI)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
