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

const recipeColumns = `id, title, description, instructions, recipe_1, recipe_2`

// RecipeRepository reads and writes the recipes table.
type RecipeRepository struct {
	db *database.Database
}

func NewRecipeRepository(db *database.Database) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ListRecipes returns every recipe ordered by id, with images and
// ingredients (and their coupons) nested.
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
		if err != nil {
			return err
		}

		recipes, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Recipe])
		if err != nil {
			return err
		}

		return loadRecipeChildren(ctx, conn, recipes)
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing recipes")
	}

	return recipes, nil
}

// GetRecipe returns one recipe with its children.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id)
		if err != nil {
			return err
		}

		recipe, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Recipe])
		if err != nil {
			if sqlerr.IsNotFound(err) {
				return sqlerr.NotFound(entityRecipe)
			}
			return err
		}

		recipes := []model.Recipe{recipe}
		if err := loadRecipeChildren(ctx, conn, recipes); err != nil {
			return err
		}
		recipe = recipes[0]
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting recipe %d", id)
	}

	return &recipe, nil
}

// CreateRecipe inserts a recipe and returns it with its store-assigned id.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, payload *model.CreateRecipePayload) (*model.Recipe, error) {
	var recipe model.Recipe

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO recipes (title, description, instructions, recipe_1, recipe_2)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+recipeColumns,
			payload.Title,
			payload.Description,
			payload.Instructions,
			payload.Recipe1,
			payload.Recipe2,
		)
		if err != nil {
			return err
		}

		recipe, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Recipe])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating recipe")
	}

	recipe.EnsureChildren()
	return &recipe, nil
}

// DeleteRecipe removes a recipe together with its coupons, ingredients and
// images in one transaction.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id int64) error {
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM recipe_ingredient_coupons
			WHERE recipe_ingredient_id IN (SELECT id FROM recipe_ingredients WHERE recipe_id = $1)`, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM recipe_images WHERE recipe_id = $1`, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return sqlerr.NotFound(entityRecipe)
		}
		return nil
	})

	return errors.Wrapf(err, "deleting recipe %d", id)
}

// loadRecipeChildren fills Images and Ingredients of every recipe in place.
func loadRecipeChildren(ctx context.Context, q querier, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]int64, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}

	images, err := listImagesByRecipe(ctx, q, ids)
	if err != nil {
		return err
	}

	ingredients, err := listIngredientsByRecipe(ctx, q, ids)
	if err != nil {
		return err
	}

	for i := range recipes {
		recipes[i].Images = images[recipes[i].ID]
		recipes[i].Ingredients = ingredients[recipes[i].ID]
		recipes[i].EnsureChildren()
	}

	return nil
}
