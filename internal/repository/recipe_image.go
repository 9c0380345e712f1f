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

const recipeImageColumns = `id, recipe_id, url`

// RecipeImageRepository reads and writes the recipe_images table.
type RecipeImageRepository struct {
	db *database.Database
}

func NewRecipeImageRepository(db *database.Database) *RecipeImageRepository {
	return &RecipeImageRepository{db: db}
}

func (r *RecipeImageRepository) ListRecipeImages(ctx context.Context) ([]model.RecipeImage, error) {
	var images []model.RecipeImage

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeImageColumns+` FROM recipe_images ORDER BY id`)
		if err != nil {
			return err
		}

		images, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeImage])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing recipe images")
	}

	return images, nil
}

func (r *RecipeImageRepository) GetRecipeImage(ctx context.Context, id int64) (*model.RecipeImage, error) {
	var image model.RecipeImage

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeImageColumns+` FROM recipe_images WHERE id = $1`, id)
		if err != nil {
			return err
		}

		image, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeImage])
		if sqlerr.IsNotFound(err) {
			return sqlerr.NotFound(entityRecipeImage)
		}
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting recipe image %d", id)
	}

	return &image, nil
}

// CreateRecipeImage inserts an image. A missing parent recipe surfaces as a
// foreign key violation from the store.
func (r *RecipeImageRepository) CreateRecipeImage(ctx context.Context, payload *model.CreateRecipeImagePayload) (*model.RecipeImage, error) {
	var image model.RecipeImage

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO recipe_images (recipe_id, url)
			VALUES ($1, $2)
			RETURNING `+recipeImageColumns,
			payload.RecipeID,
			payload.URL,
		)
		if err != nil {
			return err
		}

		image, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeImage])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating recipe image")
	}

	return &image, nil
}

func (r *RecipeImageRepository) DeleteRecipeImage(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM recipe_images WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return sqlerr.NotFound(entityRecipeImage)
		}
		return nil
	})

	return errors.Wrapf(err, "deleting recipe image %d", id)
}

// listImagesByRecipe returns the images of the given recipes keyed by recipe id.
func listImagesByRecipe(ctx context.Context, q querier, recipeIDs []int64) (map[int64][]model.RecipeImage, error) {
	rows, err := q.Query(ctx, `
		SELECT `+recipeImageColumns+`
		FROM recipe_images
		WHERE recipe_id = ANY($1)
		ORDER BY id`, recipeIDs)
	if err != nil {
		return nil, err
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeImage])
	if err != nil {
		return nil, err
	}

	byRecipe := make(map[int64][]model.RecipeImage, len(recipeIDs))
	for _, image := range images {
		byRecipe[image.RecipeID] = append(byRecipe[image.RecipeID], image)
	}
	return byRecipe, nil
}
