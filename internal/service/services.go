package service

import (
	"github.com/deppfellow/recipes-api/internal/repository"
	"github.com/deppfellow/recipes-api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Recipe                 *RecipeService
	RecipeImage            *RecipeImageService
	RecipeIngredient       *RecipeIngredientService
	RecipeIngredientCoupon *RecipeIngredientCouponService
}

// NewServices wires every service to its repository.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Recipe:                 NewRecipeService(s, repos.Recipe),
		RecipeImage:            NewRecipeImageService(s, repos.RecipeImage),
		RecipeIngredient:       NewRecipeIngredientService(s, repos.RecipeIngredient),
		RecipeIngredientCoupon: NewRecipeIngredientCouponService(s, repos.RecipeIngredientCoupon),
	}
}
