package service

import (
	"context"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
)

// RecipeIngredientCouponRepository is the data access RecipeIngredientCouponService needs.
type RecipeIngredientCouponRepository interface {
	ListRecipeIngredientCoupons(ctx context.Context) ([]model.RecipeIngredientCoupon, error)
	GetRecipeIngredientCoupon(ctx context.Context, id int64) (*model.RecipeIngredientCoupon, error)
	CreateRecipeIngredientCoupon(ctx context.Context, payload *model.CreateRecipeIngredientCouponPayload) (*model.RecipeIngredientCoupon, error)
	DeleteRecipeIngredientCoupon(ctx context.Context, id int64) error
}

type RecipeIngredientCouponService struct {
	server *server.Server
	repo   RecipeIngredientCouponRepository
}

func NewRecipeIngredientCouponService(s *server.Server, repo RecipeIngredientCouponRepository) *RecipeIngredientCouponService {
	return &RecipeIngredientCouponService{
		server: s,
		repo:   repo,
	}
}

func (s *RecipeIngredientCouponService) ListRecipeIngredientCoupons(ctx context.Context) ([]model.RecipeIngredientCoupon, error) {
	coupons, err := s.repo.ListRecipeIngredientCoupons(ctx)
	if err != nil {
		return nil, err
	}

	if coupons == nil {
		coupons = []model.RecipeIngredientCoupon{}
	}
	return coupons, nil
}

func (s *RecipeIngredientCouponService) GetRecipeIngredientCoupon(ctx context.Context, id int64) (*model.RecipeIngredientCoupon, error) {
	return s.repo.GetRecipeIngredientCoupon(ctx, id)
}

func (s *RecipeIngredientCouponService) CreateRecipeIngredientCoupon(ctx context.Context, payload *model.CreateRecipeIngredientCouponPayload) (*model.RecipeIngredientCoupon, error) {
	coupon, err := s.repo.CreateRecipeIngredientCoupon(ctx, payload)
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_ingredient_coupon_id", coupon.ID).
		Int64("recipe_ingredient_id", coupon.RecipeIngredientID).
		Str("savings_amount", coupon.SavingsAmount.String()).
		Msg("recipe ingredient coupon created")

	return coupon, nil
}

func (s *RecipeIngredientCouponService) DeleteRecipeIngredientCoupon(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecipeIngredientCoupon(ctx, id); err != nil {
		return err
	}

	requestLogger(ctx, s.server.Logger).Info().
		Int64("recipe_ingredient_coupon_id", id).
		Msg("recipe ingredient coupon deleted")

	return nil
}
