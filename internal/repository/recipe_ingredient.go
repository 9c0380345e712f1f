package repository

import (
	"context"

	"github.com/deppfellow/recipes-api/internal/database"
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/deppfellow/recipes-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const recipeIngredientColumns = `id, recipe_id, description`

// RecipeIngredientRepository reads and writes the recipe_ingredients table.
type RecipeIngredientRepository struct {
	db *database.Database
}

func NewRecipeIngredientRepository(db *database.Database) *RecipeIngredientRepository {
	return &RecipeIngredientRepository{db: db}
}

// ListRecipeIngredients returns every ingredient with its coupons nested.
func (r *RecipeIngredientRepository) ListRecipeIngredients(ctx context.Context) ([]model.RecipeIngredient, error) {
	var ingredients []model.RecipeIngredient

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeIngredientColumns+` FROM recipe_ingredients ORDER BY id`)
		if err != nil {
			return err
		}

		ingredients, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeIngredient])
		if err != nil {
			return err
		}

		return loadIngredientCoupons(ctx, conn, ingredients)
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing recipe ingredients")
	}

	return ingredients, nil
}

func (r *RecipeIngredientRepository) GetRecipeIngredient(ctx context.Context, id int64) (*model.RecipeIngredient, error) {
	var ingredient model.RecipeIngredient

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeIngredientColumns+` FROM recipe_ingredients WHERE id = $1`, id)
		if err != nil {
			return err
		}

		ingredient, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeIngredient])
		if err != nil {
			if sqlerr.IsNotFound(err) {
				return sqlerr.NotFound(entityRecipeIngredient)
			}
			return err
		}

		ingredients := []model.RecipeIngredient{ingredient}
		if err := loadIngredientCoupons(ctx, conn, ingredients); err != nil {
			return err
		}
		ingredient = ingredients[0]
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting recipe ingredient %d", id)
	}

	return &ingredient, nil
}

func (r *RecipeIngredientRepository) CreateRecipeIngredient(ctx context.Context, payload *model.CreateRecipeIngredientPayload) (*model.RecipeIngredient, error) {
	var ingredient model.RecipeIngredient

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, description)
			VALUES ($1, $2)
			RETURNING `+recipeIngredientColumns,
			payload.RecipeID,
			payload.Description,
		)
		if err != nil {
			return err
		}

		ingredient, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeIngredient])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating recipe ingredient")
	}

	ingredient.EnsureChildren()
	return &ingredient, nil
}

// DeleteRecipeIngredient removes an ingredient and its coupons in one transaction.
func (r *RecipeIngredientRepository) DeleteRecipeIngredient(ctx context.Context, id int64) error {
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredient_coupons WHERE recipe_ingredient_id = $1`, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return sqlerr.NotFound(entityRecipeIngredient)
		}
		return nil
	})

	return errors.Wrapf(err, "deleting recipe ingredient %d", id)
}

// listIngredientsByRecipe returns the ingredients of the given recipes, coupons
// included, keyed by recipe id.
func listIngredientsByRecipe(ctx context.Context, q querier, recipeIDs []int64) (map[int64][]model.RecipeIngredient, error) {
	rows, err := q.Query(ctx, `
		SELECT `+recipeIngredientColumns+`
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1)
		ORDER BY id`, recipeIDs)
	if err != nil {
		return nil, err
	}

	ingredients, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeIngredient])
	if err != nil {
		return nil, err
	}

	if err := loadIngredientCoupons(ctx, q, ingredients); err != nil {
		return nil, err
	}

	byRecipe := make(map[int64][]model.RecipeIngredient, len(recipeIDs))
	for _, ingredient := range ingredients {
		byRecipe[ingredient.RecipeID] = append(byRecipe[ingredient.RecipeID], ingredient)
	}
	return byRecipe, nil
}

// loadIngredientCoupons fills Coupons of every ingredient in place.
func loadIngredientCoupons(ctx context.Context, q querier, ingredients []model.RecipeIngredient) error {
	if len(ingredients) == 0 {
		return nil
	}

	ids := make([]int64, len(ingredients))
	for i := range ingredients {
		ids[i] = ingredients[i].ID
	}

	coupons, err := listCouponsByIngredient(ctx, q, ids)
	if err != nil {
		return err
	}

	for i := range ingredients {
		ingredients[i].Coupons = coupons[ingredients[i].ID]
		ingredients[i].EnsureChildren()
	}
	return nil
}
