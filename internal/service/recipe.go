package service

import (
	"context"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
)

// RecipeRepository is the data access RecipeService needs.
type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, payload *model.CreateRecipePayload) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

type RecipeService struct {
	server *server.Server
	repo   RecipeRepository
}

func NewRecipeService(s *server.Server, repo RecipeRepository) *RecipeService {
	return &RecipeService{
		server: s,
		repo:   repo,
	}
}

func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if recipes == nil {
		recipes = []model.Recipe{}
	}
	for i := range recipes {
		recipes[i].EnsureChildren()
	}
	return recipes, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.EnsureChildren()
	return recipe, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, payload *model.CreateRecipePayload) (*model.Recipe, error) {
	recipe, err := s.repo.CreateRecipe(ctx, payload)
	if err != nil {
		return nil, err
	}

	recipe.EnsureChildren()

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_id", recipe.ID).
		Msg("recipe created")

	return recipe, nil
}

// DeleteRecipe deletes a recipe with its images, ingredients and coupons.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_id", id).
		Msg("recipe deleted")

	return nil
}
