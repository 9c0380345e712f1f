package model

// RecipeIngredient is an ingredient line of a recipe, with its coupons nested.
type RecipeIngredient struct {
	ID          int64                    `json:"id" db:"id"`
	RecipeID    int64                    `json:"recipe_id" db:"recipe_id"`
	Description string                   `json:"description" db:"description"`
	Coupons     []RecipeIngredientCoupon `json:"coupons" db:"-"`
}

// EnsureChildren replaces a nil coupon slice with an empty one.
func (i *RecipeIngredient) EnsureChildren() {
	if i.Coupons == nil {
		i.Coupons = []RecipeIngredientCoupon{}
	}
}

// CreateRecipeIngredientPayload holds the writable fields of an ingredient.
type CreateRecipeIngredientPayload struct {
	RecipeID    int64  `json:"recipe_id"`
	Description string `json:"description"`
}

func (p *CreateRecipeIngredientPayload) Validate() error {
	return nil
}

// NewCreateRecipeIngredientPayload returns a fresh CreateRecipeIngredientPayload.
func NewCreateRecipeIngredientPayload() *CreateRecipeIngredientPayload {
	return &CreateRecipeIngredientPayload{}
}
