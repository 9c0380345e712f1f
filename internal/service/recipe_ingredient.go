package service

import (
	"context"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
)

// RecipeIngredientRepository is the data access RecipeIngredientService needs.
type RecipeIngredientRepository interface {
	ListRecipeIngredients(ctx context.Context) ([]model.RecipeIngredient, error)
	GetRecipeIngredient(ctx context.Context, id int64) (*model.RecipeIngredient, error)
	CreateRecipeIngredient(ctx context.Context, payload *model.CreateRecipeIngredientPayload) (*model.RecipeIngredient, error)
	DeleteRecipeIngredient(ctx context.Context, id int64) error
}

type RecipeIngredientService struct {
	server *server.Server
	repo   RecipeIngredientRepository
}

func NewRecipeIngredientService(s *server.Server, repo RecipeIngredientRepository) *RecipeIngredientService {
	return &RecipeIngredientService{
		server: s,
		repo:   repo,
	}
}

func (s *RecipeIngredientService) ListRecipeIngredients(ctx context.Context) ([]model.RecipeIngredient, error) {
	ingredients, err := s.repo.ListRecipeIngredients(ctx)
	if err != nil {
		return nil, err
	}

	if ingredients == nil {
		ingredients = []model.RecipeIngredient{}
	}
	for i := range ingredients {
		ingredients[i].EnsureChildren()
	}
	return ingredients, nil
}

func (s *RecipeIngredientService) GetRecipeIngredient(ctx context.Context, id int64) (*model.RecipeIngredient, error) {
	ingredient, err := s.repo.GetRecipeIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredient.EnsureChildren()
	return ingredient, nil
}

func (s *RecipeIngredientService) CreateRecipeIngredient(ctx context.Context, payload *model.CreateRecipeIngredientPayload) (*model.RecipeIngredient, error) {
	ingredient, err := s.repo.CreateRecipeIngredient(ctx, payload)
	if err != nil {
		return nil, err
	}

	ingredient.EnsureChildren()

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_ingredient_id", ingredient.ID).
		Int64("recipe_id", ingredient.RecipeID).
		Msg("recipe ingredient created")

	return ingredient, nil
}

// DeleteRecipeIngredient deletes an ingredient with its coupons.
func (s *RecipeIngredientService) DeleteRecipeIngredient(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecipeIngredient(ctx, id); err != nil {
		return err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_ingredient_id", id).
		Msg("recipe ingredient deleted")

	return nil
}
