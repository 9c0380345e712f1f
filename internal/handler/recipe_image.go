package handler

import (
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RecipeImageHandler struct {
	Handler
	recipeImageService *service.RecipeImageService
}

func NewRecipeImageHandler(s *server.Server, recipeImageService *service.RecipeImageService) *RecipeImageHandler {
	return &RecipeImageHandler{
		Handler:            NewHandler(s),
		recipeImageService: recipeImageService,
	}
}

func (h *RecipeImageHandler) ListRecipeImages(c echo.Context, _ *model.ListParams) ([]model.RecipeImage, error) {
	return h.recipeImageService.ListRecipeImages(c.Request().Context())
}

func (h *RecipeImageHandler) GetRecipeImage(c echo.Context, req *model.IDParam) (*model.RecipeImage, error) {
	return h.recipeImageService.GetRecipeImage(c.Request().Context(), req.ID)
}

func (h *RecipeImageHandler) CreateRecipeImage(c echo.Context, req *model.CreateRecipeImagePayload) (*model.RecipeImage, error) {
	return h.recipeImageService.CreateRecipeImage(c.Request().Context(), req)
}

func (h *RecipeImageHandler) DeleteRecipeImage(c echo.Context, req *model.IDParam) error {
	return h.recipeImageService.DeleteRecipeImage(c.Request().Context(), req.ID)
}
