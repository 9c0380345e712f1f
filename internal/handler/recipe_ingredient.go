package handler

import (
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RecipeIngredientHandler struct {
	Handler
	recipeIngredientService *service.RecipeIngredientService
}

func NewRecipeIngredientHandler(s *server.Server, recipeIngredientService *service.RecipeIngredientService) *RecipeIngredientHandler {
	return &RecipeIngredientHandler{
		Handler:                 NewHandler(s),
		recipeIngredientService: recipeIngredientService,
	}
}

func (h *RecipeIngredientHandler) ListRecipeIngredients(c echo.Context, _ *model.ListParams) ([]model.RecipeIngredient, error) {
	return h.recipeIngredientService.ListRecipeIngredients(c.Request().Context())
}

func (h *RecipeIngredientHandler) GetRecipeIngredient(c echo.Context, req *model.IDParam) (*model.RecipeIngredient, error) {
	return h.recipeIngredientService.GetRecipeIngredient(c.Request().Context(), req.ID)
}

func (h *RecipeIngredientHandler) CreateRecipeIngredient(c echo.Context, req *model.CreateRecipeIngredientPayload) (*model.RecipeIngredient, error) {
	return h.recipeIngredientService.CreateRecipeIngredient(c.Request().Context(), req)
}

func (h *RecipeIngredientHandler) DeleteRecipeIngredient(c echo.Context, req *model.IDParam) error {
	return h.recipeIngredientService.DeleteRecipeIngredient(c.Request().Context(), req.ID)
}
