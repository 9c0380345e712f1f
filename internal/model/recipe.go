package model

// Recipe is a recipe with its images and ingredients nested.
type Recipe struct {
	ID           int64              `json:"id" db:"id"`
	Title        string             `json:"title" db:"title"`
	Description  string             `json:"description" db:"description"`
	Instructions string             `json:"instructions" db:"instructions"`
	Recipe1      string             `json:"recipe_1" db:"recipe_1"`
	Recipe2      string             `json:"recipe_2" db:"recipe_2"`
	Images       []RecipeImage      `json:"images" db:"-"`
	Ingredients  []RecipeIngredient `json:"ingredients" db:"-"`
}

// EnsureChildren replaces nil child slices with empty ones so they
// serialize as [] instead of null.
func (r *Recipe) EnsureChildren() {
	if r.Images == nil {
		r.Images = []RecipeImage{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []RecipeIngredient{}
	}
	for i := range r.Ingredients {
		r.Ingredients[i].EnsureChildren()
	}
}

// CreateRecipePayload holds the writable fields of a recipe.
type CreateRecipePayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Recipe1      string `json:"recipe_1"`
	Recipe2      string `json:"recipe_2"`
}

func (p *CreateRecipePayload) Validate() error {
	return nil
}

// NewCreateRecipePayload returns a fresh CreateRecipePayload.
func NewCreateRecipePayload() *CreateRecipePayload {
	return &CreateRecipePayload{}
}
