package service

import (
	"context"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
)

// RecipeImageRepository is the data access RecipeImageService needs.
type RecipeImageRepository interface {
	ListRecipeImages(ctx context.Context) ([]model.RecipeImage, error)
	GetRecipeImage(ctx context.Context, id int64) (*model.RecipeImage, error)
	CreateRecipeImage(ctx context.Context, payload *model.CreateRecipeImagePayload) (*model.RecipeImage, error)
	DeleteRecipeImage(ctx context.Context, id int64) error
}

type RecipeImageService struct {
	server *server.Server
	repo   RecipeImageRepository
}

func NewRecipeImageService(s *server.Server, repo RecipeImageRepository) *RecipeImageService {
	return &RecipeImageService{
		server: s,
		repo:   repo,
	}
}

func (s *RecipeImageService) ListRecipeImages(ctx context.Context) ([]model.RecipeImage, error) {
	images, err := s.repo.ListRecipeImages(ctx)
	if err != nil {
		return nil, err
	}

	if images == nil {
		images = []model.RecipeImage{}
	}
	return images, nil
}

func (s *RecipeImageService) GetRecipeImage(ctx context.Context, id int64) (*model.RecipeImage, error) {
	return s.repo.GetRecipeImage(ctx, id)
}

func (s *RecipeImageService) CreateRecipeImage(ctx context.Context, payload *model.CreateRecipeImagePayload) (*model.RecipeImage, error) {
	image, err := s.repo.CreateRecipeImage(ctx, payload)
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_image_id", image.ID).
		Int64("recipe_id", image.RecipeID).
		Msg("recipe image created")

	return image, nil
}

func (s *RecipeImageService) DeleteRecipeImage(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecipeImage(ctx, id); err != nil {
		return err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_image_id", id).
		Msg("recipe image deleted")

	return nil
}
