package repository

import (
	"github.com/deppfellow/recipes-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Recipe                 *RecipeRepository
	RecipeImage            *RecipeImageRepository
	RecipeIngredient       *RecipeIngredientRepository
	RecipeIngredientCoupon *RecipeIngredientCouponRepository
}

// NewRepositories constructs the repository container over the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Recipe:                 NewRecipeRepository(s.DB),
		RecipeImage:            NewRecipeImageRepository(s.DB),
		RecipeIngredient:       NewRecipeIngredientRepository(s.DB),
		RecipeIngredientCoupon: NewRecipeIngredientCouponRepository(s.DB),
	}
}
