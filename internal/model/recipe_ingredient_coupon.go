package model

import "github.com/shopspring/decimal"

// RecipeIngredientCoupon is a coupon offered for an ingredient.
type RecipeIngredientCoupon struct {
	ID                 int64           `json:"id" db:"id"`
	RecipeIngredientID int64           `json:"recipe_ingredient_id" db:"recipe_ingredient_id"`
	ImageURL           string          `json:"image_url" db:"image_url"`
	SavingsAmount      decimal.Decimal `json:"savings_amount" db:"savings_amount"`
	ShortDescription   string          `json:"short_description" db:"short_description"`
}

// CreateRecipeIngredientCouponPayload holds the writable fields of a coupon.
type CreateRecipeIngredientCouponPayload struct {
	RecipeIngredientID int64           `json:"recipe_ingredient_id"`
	ImageURL           string          `json:"image_url"`
	SavingsAmount      decimal.Decimal `json:"savings_amount"`
	ShortDescription   string          `json:"short_description"`
}

func (p *CreateRecipeIngredientCouponPayload) Validate() error {
	return nil
}

// NewCreateRecipeIngredientCouponPayload returns a fresh CreateRecipeIngredientCouponPayload.
func NewCreateRecipeIngredientCouponPayload() *CreateRecipeIngredientCouponPayload {
	return &CreateRecipeIngredientCouponPayload{}
}
