package handler

import (
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RecipeIngredientCouponHandler struct {
	Handler
	couponService *service.RecipeIngredientCouponService
}

func NewRecipeIngredientCouponHandler(s *server.Server, couponService *service.RecipeIngredientCouponService) *RecipeIngredientCouponHandler {
	return &RecipeIngredientCouponHandler{
		Handler:       NewHandler(s),
		couponService: couponService,
	}
}

func (h *RecipeIngredientCouponHandler) ListRecipeIngredientCoupons(c echo.Context, _ *model.ListParams) ([]model.RecipeIngredientCoupon, error) {
	return h.couponService.ListRecipeIngredientCoupons(c.Request().Context())
}

func (h *RecipeIngredientCouponHandler) GetRecipeIngredientCoupon(c echo.Context, req *model.IDParam) (*model.RecipeIngredientCoupon, error) {
	return h.couponService.GetRecipeIngredientCoupon(c.Request().Context(), req.ID)
}

func (h *RecipeIngredientCouponHandler) CreateRecipeIngredientCoupon(c echo.Context, req *model.CreateRecipeIngredientCouponPayload) (*model.RecipeIngredientCoupon, error) {
	return h.couponService.CreateRecipeIngredientCoupon(c.Request().Context(), req)
}

func (h *RecipeIngredientCouponHandler) DeleteRecipeIngredientCoupon(c echo.Context, req *model.IDParam) error {
	return h.couponService.DeleteRecipeIngredientCoupon(c.Request().Context(), req.ID)
}
