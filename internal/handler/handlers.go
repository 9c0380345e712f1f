package handler

import (
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup takes a single value.
type Handlers struct {
	Health                 *HealthHandler
	OpenAPI                *OpenAPIHandler
	Recipe                 *RecipeHandler
	RecipeImage            *RecipeImageHandler
	RecipeIngredient       *RecipeIngredientHandler
	RecipeIngredientCoupon *RecipeIngredientCouponHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:                 NewHealthHandler(s),
		OpenAPI:                NewOpenAPIHandler(s),
		Recipe:                 NewRecipeHandler(s, services.Recipe),
		RecipeImage:            NewRecipeImageHandler(s, services.RecipeImage),
		RecipeIngredient:       NewRecipeIngredientHandler(s, services.RecipeIngredient),
		RecipeIngredientCoupon: NewRecipeIngredientCouponHandler(s, services.RecipeIngredientCoupon),
	}
}
