// Package repository handles all interactions with the database.
//
// It contains the SQL statements and methods to fetch, persist and
// delete entities, abstracting SQL away from the service layer. Each
// call acquires its own pooled connection through database.Database
// and releases it before returning.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Entity names used to tag not-found errors. HandleError turns
// "recipe_ingredient" into "Recipe Ingredient not found".
const (
	entityRecipe                 = "recipe"
	entityRecipeImage            = "recipe_image"
	entityRecipeIngredient       = "recipe_ingredient"
	entityRecipeIngredientCoupon = "recipe_ingredient_coupon"
)

// querier is satisfied by *pgxpool.Conn and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
