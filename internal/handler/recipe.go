package handler

import (
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RecipeHandler struct {
	Handler
	recipeService *service.RecipeService
}

func NewRecipeHandler(s *server.Server, recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		Handler:       NewHandler(s),
		recipeService: recipeService,
	}
}

func (h *RecipeHandler) ListRecipes(c echo.Context, _ *model.ListParams) ([]model.Recipe, error) {
	return h.recipeService.ListRecipes(c.Request().Context())
}

func (h *RecipeHandler) GetRecipe(c echo.Context, req *model.IDParam) (*model.Recipe, error) {
	return h.recipeService.GetRecipe(c.Request().Context(), req.ID)
}

func (h *RecipeHandler) CreateRecipe(c echo.Context, req *model.CreateRecipePayload) (*model.Recipe, error) {
	return h.recipeService.CreateRecipe(c.Request().Context(), req)
}

func (h *RecipeHandler) DeleteRecipe(c echo.Context, req *model.IDParam) error {
	return h.recipeService.DeleteRecipe(c.Request().Context(), req.ID)
}
