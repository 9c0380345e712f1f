package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_EnsureChildren(t *testing.T) {
	recipe := Recipe{
		ID:          1,
		Title:       "Tea",
		Ingredients: []RecipeIngredient{{ID: 2, RecipeID: 1}},
	}
	recipe.EnsureChildren()

	body, err := json.Marshal(recipe)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"title": "Tea",
		"description": "",
		"instructions": "",
		"recipe_1": "",
		"recipe_2": "",
		"images": [],
		"ingredients": [{"id": 2, "recipe_id": 1, "description": "", "coupons": []}]
	}`, string(body))
}

func TestRecipeIngredientCoupon_SavingsAmountIsNumber(t *testing.T) {
	coupon := RecipeIngredientCoupon{
		ID:                 3,
		RecipeIngredientID: 2,
		SavingsAmount:      decimal.RequireFromString("1.25"),
	}

	body, err := json.Marshal(coupon)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"savings_amount":1.25`)
}

func TestCreateRecipeIngredientCouponPayload_Decode(t *testing.T) {
	for _, raw := range []string{
		`{"recipe_ingredient_id": 2, "savings_amount": 0.75}`,
		`{"recipe_ingredient_id": 2, "savings_amount": "0.75"}`,
	} {
		payload := NewCreateRecipeIngredientCouponPayload()
		require.NoError(t, json.Unmarshal([]byte(raw), payload))

		assert.Equal(t, int64(2), payload.RecipeIngredientID)
		assert.True(t, payload.SavingsAmount.Equal(decimal.RequireFromString("0.75")), raw)
		assert.NoError(t, payload.Validate())
	}
}

func TestPayloadsValidate(t *testing.T) {
	assert.NoError(t, NewCreateRecipePayload().Validate())
	assert.NoError(t, NewCreateRecipeImagePayload().Validate())
	assert.NoError(t, NewCreateRecipeIngredientPayload().Validate())
	assert.NoError(t, NewIDParam().Validate())
	assert.NoError(t, NewListParams().Validate())

	// Field contents are not checked; the database rejects bad references.
	assert.NoError(t, (&CreateRecipeImagePayload{RecipeID: -1}).Validate())
	assert.NoError(t, (&CreateRecipeIngredientCouponPayload{SavingsAmount: decimal.NewFromInt(-5)}).Validate())
	assert.NoError(t, (&IDParam{ID: 0}).Validate())
}

func TestIDParam_IgnoresBodyID(t *testing.T) {
	param := &IDParam{ID: 2}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "ID": 4}`), param))
	assert.Equal(t, int64(2), param.ID)
}
