package model

// RecipeImage is an image URL attached to a recipe.
type RecipeImage struct {
	ID       int64  `json:"id" db:"id"`
	RecipeID int64  `json:"recipe_id" db:"recipe_id"`
	URL      string `json:"url" db:"url"`
}

// CreateRecipeImagePayload holds the writable fields of a recipe image.
type CreateRecipeImagePayload struct {
	RecipeID int64  `json:"recipe_id"`
	URL      string `json:"url"`
}

func (p *CreateRecipeImagePayload) Validate() error {
	return nil
}

// NewCreateRecipeImagePayload returns a fresh CreateRecipeImagePayload.
func NewCreateRecipeImagePayload() *CreateRecipeImagePayload {
	return &CreateRecipeImagePayload{}
}
