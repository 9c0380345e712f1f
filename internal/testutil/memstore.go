// Package testutil provides test doubles shared by the service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
)

// MemStore keeps all four entities in memory and behaves like the Postgres
// repositories: ids are assigned in ascending order, a missing parent is a
// foreign key violation, and deletes cascade to children.
//
// Setting Err makes every call fail with it.
type MemStore struct {
	mu sync.Mutex

	Err error

	nextID      int64
	recipes     map[int64]model.Recipe
	images      map[int64]model.RecipeImage
	ingredients map[int64]model.RecipeIngredient
	coupons     map[int64]model.RecipeIngredientCoupon
}

func NewMemStore() *MemStore {
	return &MemStore{
		recipes:     map[int64]model.Recipe{},
		images:      map[int64]model.RecipeImage{},
		ingredients: map[int64]model.RecipeIngredient{},
		coupons:     map[int64]model.RecipeIngredientCoupon{},
	}
}

func (m *MemStore) id() int64 {
	m.nextID++
	return m.nextID
}

// foreignKeyViolation mirrors what Postgres reports for an insert whose
// parent row is missing: no column name, the parent table only in Detail.
func foreignKeyViolation(table, column, parent string, id int64) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint \"%s_%s_fkey\"", table, table, column),
		Detail:         fmt.Sprintf("Key (%s)=(%d) is not present in table %q.", column, id, parent),
		TableName:      table,
		ConstraintName: fmt.Sprintf("%s_%s_fkey", table, column),
	}
}

func sortedKeys[V any](items map[int64]V) []int64 {
	keys := make([]int64, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Recipes

func (m *MemStore) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	recipes := []model.Recipe{}
	for _, id := range sortedKeys(m.recipes) {
		recipes = append(recipes, m.recipeWithChildren(id))
	}
	return recipes, nil
}

func (m *MemStore) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.recipes[id]; !ok {
		return nil, sqlerr.NotFound("recipe")
	}

	recipe := m.recipeWithChildren(id)
	return &recipe, nil
}

func (m *MemStore) CreateRecipe(ctx context.Context, payload *model.CreateRecipePayload) (*model.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	recipe := model.Recipe{
		ID:           m.id(),
		Title:        payload.Title,
		Description:  payload.Description,
		Instructions: payload.Instructions,
		Recipe1:      payload.Recipe1,
		Recipe2:      payload.Recipe2,
	}
	m.recipes[recipe.ID] = recipe

	recipe.EnsureChildren()
	return &recipe, nil
}

func (m *MemStore) DeleteRecipe(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.recipes[id]; !ok {
		return sqlerr.NotFound("recipe")
	}

	for ingredientID, ingredient := range m.ingredients {
		if ingredient.RecipeID == id {
			m.deleteIngredient(ingredientID)
		}
	}
	for imageID, image := range m.images {
		if image.RecipeID == id {
			delete(m.images, imageID)
		}
	}
	delete(m.recipes, id)
	return nil
}

func (m *MemStore) recipeWithChildren(id int64) model.Recipe {
	recipe := m.recipes[id]

	recipe.Images = []model.RecipeImage{}
	for _, imageID := range sortedKeys(m.images) {
		if m.images[imageID].RecipeID == id {
			recipe.Images = append(recipe.Images, m.images[imageID])
		}
	}

	recipe.Ingredients = []model.RecipeIngredient{}
	for _, ingredientID := range sortedKeys(m.ingredients) {
		if m.ingredients[ingredientID].RecipeID == id {
			recipe.Ingredients = append(recipe.Ingredients, m.ingredientWithCoupons(ingredientID))
		}
	}
	return recipe
}

// Recipe images

func (m *MemStore) ListRecipeImages(ctx context.Context) ([]model.RecipeImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	images := []model.RecipeImage{}
	for _, id := range sortedKeys(m.images) {
		images = append(images, m.images[id])
	}
	return images, nil
}

func (m *MemStore) GetRecipeImage(ctx context.Context, id int64) (*model.RecipeImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	image, ok := m.images[id]
	if !ok {
		return nil, sqlerr.NotFound("recipe_image")
	}
	return &image, nil
}

func (m *MemStore) CreateRecipeImage(ctx context.Context, payload *model.CreateRecipeImagePayload) (*model.RecipeImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.recipes[payload.RecipeID]; !ok {
		return nil, foreignKeyViolation("recipe_images", "recipe_id", "recipes", payload.RecipeID)
	}

	image := model.RecipeImage{
		ID:       m.id(),
		RecipeID: payload.RecipeID,
		URL:      payload.URL,
	}
	m.images[image.ID] = image
	return &image, nil
}

func (m *MemStore) DeleteRecipeImage(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.images[id]; !ok {
		return sqlerr.NotFound("recipe_image")
	}
	delete(m.images, id)
	return nil
}

// Recipe ingredients

func (m *MemStore) ListRecipeIngredients(ctx context.Context) ([]model.RecipeIngredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	ingredients := []model.RecipeIngredient{}
	for _, id := range sortedKeys(m.ingredients) {
		ingredients = append(ingredients, m.ingredientWithCoupons(id))
	}
	return ingredients, nil
}

func (m *MemStore) GetRecipeIngredient(ctx context.Context, id int64) (*model.RecipeIngredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.ingredients[id]; !ok {
		return nil, sqlerr.NotFound("recipe_ingredient")
	}

	ingredient := m.ingredientWithCoupons(id)
	return &ingredient, nil
}

func (m *MemStore) CreateRecipeIngredient(ctx context.Context, payload *model.CreateRecipeIngredientPayload) (*model.RecipeIngredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.recipes[payload.RecipeID]; !ok {
		return nil, foreignKeyViolation("recipe_ingredients", "recipe_id", "recipes", payload.RecipeID)
	}

	ingredient := model.RecipeIngredient{
		ID:          m.id(),
		RecipeID:    payload.RecipeID,
		Description: payload.Description,
	}
	m.ingredients[ingredient.ID] = ingredient

	ingredient.EnsureChildren()
	return &ingredient, nil
}

func (m *MemStore) DeleteRecipeIngredient(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.ingredients[id]; !ok {
		return sqlerr.NotFound("recipe_ingredient")
	}
	m.deleteIngredient(id)
	return nil
}

func (m *MemStore) deleteIngredient(id int64) {
	for couponID, coupon := range m.coupons {
		if coupon.RecipeIngredientID == id {
			delete(m.coupons, couponID)
		}
	}
	delete(m.ingredients, id)
}

func (m *MemStore) ingredientWithCoupons(id int64) model.RecipeIngredient {
	ingredient := m.ingredients[id]

	ingredient.Coupons = []model.RecipeIngredientCoupon{}
	for _, couponID := range sortedKeys(m.coupons) {
		if m.coupons[couponID].RecipeIngredientID == id {
			ingredient.Coupons = append(ingredient.Coupons, m.coupons[couponID])
		}
	}
	return ingredient
}

// Recipe ingredient coupons

func (m *MemStore) ListRecipeIngredientCoupons(ctx context.Context) ([]model.RecipeIngredientCoupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	coupons := []model.RecipeIngredientCoupon{}
	for _, id := range sortedKeys(m.coupons) {
		coupons = append(coupons, m.coupons[id])
	}
	return coupons, nil
}

func (m *MemStore) GetRecipeIngredientCoupon(ctx context.Context, id int64) (*model.RecipeIngredientCoupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	coupon, ok := m.coupons[id]
	if !ok {
		return nil, sqlerr.NotFound("recipe_ingredient_coupon")
	}
	return &coupon, nil
}

func (m *MemStore) CreateRecipeIngredientCoupon(ctx context.Context, payload *model.CreateRecipeIngredientCouponPayload) (*model.RecipeIngredientCoupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.ingredients[payload.RecipeIngredientID]; !ok {
		return nil, foreignKeyViolation("recipe_ingredient_coupons", "recipe_ingredient_id", "recipe_ingredients", payload.RecipeIngredientID)
	}

	coupon := model.RecipeIngredientCoupon{
		ID:                 m.id(),
		RecipeIngredientID: payload.RecipeIngredientID,
		ImageURL:           payload.ImageURL,
		SavingsAmount:      payload.SavingsAmount.Round(2),
		ShortDescription:   payload.ShortDescription,
	}
	m.coupons[coupon.ID] = coupon
	return &coupon, nil
}

func (m *MemStore) DeleteRecipeIngredientCoupon(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.coupons[id]; !ok {
		return sqlerr.NotFound("recipe_ingredient_coupon")
	}
	delete(m.coupons, id)
	return nil
}
