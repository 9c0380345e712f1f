package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/deppfellow/recipes-api/internal/sqlerr"
	"github.com/deppfellow/recipes-api/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (*service.Services, *testutil.MemStore, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	store := testutil.NewMemStore()
	return testutil.NewServices(testutil.NewServer(&logs), store), store, &logs
}

func TestRecipeService_CreateAndGet(t *testing.T) {
	services, _, logs := newServices(t)
	ctx := context.Background()

	created, err := services.Recipe.CreateRecipe(ctx, &model.CreateRecipePayload{
		Title:        "Tea",
		Description:  "Hot drink",
		Instructions: "Boil water",
		Recipe1:      "a",
		Recipe2:      "b",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotNil(t, created.Images)
	assert.NotNil(t, created.Ingredients)
	assert.Contains(t, logs.String(), "recipe created")

	got, err := services.Recipe.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Recipe2, got.Recipe2)
}

func TestRecipeService_ListEmpty(t *testing.T) {
	services, _, _ := newServices(t)

	recipes, err := services.Recipe.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRecipeService_DeleteCascades(t *testing.T) {
	services, _, _ := newServices(t)
	ctx := context.Background()

	recipe, err := services.Recipe.CreateRecipe(ctx, &model.CreateRecipePayload{Title: "Soup"})
	require.NoError(t, err)
	image, err := services.RecipeImage.CreateRecipeImage(ctx, &model.CreateRecipeImagePayload{RecipeID: recipe.ID, URL: "u"})
	require.NoError(t, err)
	ingredient, err := services.RecipeIngredient.CreateRecipeIngredient(ctx, &model.CreateRecipeIngredientPayload{RecipeID: recipe.ID})
	require.NoError(t, err)
	coupon, err := services.RecipeIngredientCoupon.CreateRecipeIngredientCoupon(ctx, &model.CreateRecipeIngredientCouponPayload{
		RecipeIngredientID: ingredient.ID,
		SavingsAmount:      decimal.RequireFromString("1.10"),
	})
	require.NoError(t, err)

	got, err := services.Recipe.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	require.Len(t, got.Ingredients[0].Coupons, 1)

	require.NoError(t, services.Recipe.DeleteRecipe(ctx, recipe.ID))

	_, err = services.Recipe.GetRecipe(ctx, recipe.ID)
	assert.True(t, sqlerr.IsNotFound(err))
	_, err = services.RecipeImage.GetRecipeImage(ctx, image.ID)
	assert.True(t, sqlerr.IsNotFound(err))
	_, err = services.RecipeIngredient.GetRecipeIngredient(ctx, ingredient.ID)
	assert.True(t, sqlerr.IsNotFound(err))
	_, err = services.RecipeIngredientCoupon.GetRecipeIngredientCoupon(ctx, coupon.ID)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestRecipeIngredientService_DeleteCascadesToCoupons(t *testing.T) {
	services, _, _ := newServices(t)
	ctx := context.Background()

	recipe, err := services.Recipe.CreateRecipe(ctx, &model.CreateRecipePayload{Title: "Salad"})
	require.NoError(t, err)
	ingredient, err := services.RecipeIngredient.CreateRecipeIngredient(ctx, &model.CreateRecipeIngredientPayload{RecipeID: recipe.ID})
	require.NoError(t, err)
	_, err = services.RecipeIngredientCoupon.CreateRecipeIngredientCoupon(ctx, &model.CreateRecipeIngredientCouponPayload{RecipeIngredientID: ingredient.ID})
	require.NoError(t, err)

	require.NoError(t, services.RecipeIngredient.DeleteRecipeIngredient(ctx, ingredient.ID))

	coupons, err := services.RecipeIngredientCoupon.ListRecipeIngredientCoupons(ctx)
	require.NoError(t, err)
	assert.Empty(t, coupons)

	got, err := services.Recipe.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)
}

func TestRecipeImageService_MissingRecipe(t *testing.T) {
	services, _, _ := newServices(t)

	_, err := services.RecipeImage.CreateRecipeImage(context.Background(), &model.CreateRecipeImagePayload{RecipeID: 42})
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
}

func TestServices_DeleteMissing(t *testing.T) {
	services, _, _ := newServices(t)
	ctx := context.Background()

	assert.True(t, sqlerr.IsNotFound(services.Recipe.DeleteRecipe(ctx, 999)))
	assert.True(t, sqlerr.IsNotFound(services.RecipeImage.DeleteRecipeImage(ctx, 999)))
	assert.True(t, sqlerr.IsNotFound(services.RecipeIngredient.DeleteRecipeIngredient(ctx, 999)))
	assert.True(t, sqlerr.IsNotFound(services.RecipeIngredientCoupon.DeleteRecipeIngredientCoupon(ctx, 999)))
}

func TestServices_StoreFailure(t *testing.T) {
	services, store, _ := newServices(t)
	store.Err = errors.New("connection refused")

	_, err := services.Recipe.ListRecipes(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestServices_UseRequestLogger(t *testing.T) {
	services, _, serverLogs := newServices(t)

	var requestLogs bytes.Buffer
	logger := zerolog.New(&requestLogs).With().Str("request_id", "abc").Logger()
	ctx := logger.WithContext(context.Background())

	_, err := services.Recipe.CreateRecipe(ctx, &model.CreateRecipePayload{Title: "Tea"})
	require.NoError(t, err)

	assert.Contains(t, requestLogs.String(), `"request_id":"abc"`)
	assert.NotContains(t, serverLogs.String(), "recipe created")
}
