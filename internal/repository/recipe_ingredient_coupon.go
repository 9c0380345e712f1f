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

const recipeIngredientCouponColumns = `id, recipe_ingredient_id, image_url, savings_amount, short_description`

// RecipeIngredientCouponRepository reads and writes the recipe_ingredient_coupons table.
type RecipeIngredientCouponRepository struct {
	db *database.Database
}

func NewRecipeIngredientCouponRepository(db *database.Database) *RecipeIngredientCouponRepository {
	return &RecipeIngredientCouponRepository{db: db}
}

func (r *RecipeIngredientCouponRepository) ListRecipeIngredientCoupons(ctx context.Context) ([]model.RecipeIngredientCoupon, error) {
	var coupons []model.RecipeIngredientCoupon

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeIngredientCouponColumns+` FROM recipe_ingredient_coupons ORDER BY id`)
		if err != nil {
			return err
		}

		coupons, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeIngredientCoupon])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing recipe ingredient coupons")
	}

	return coupons, nil
}

func (r *RecipeIngredientCouponRepository) GetRecipeIngredientCoupon(ctx context.Context, id int64) (*model.RecipeIngredientCoupon, error) {
	var coupon model.RecipeIngredientCoupon

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+recipeIngredientCouponColumns+` FROM recipe_ingredient_coupons WHERE id = $1`, id)
		if err != nil {
			return err
		}

		coupon, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeIngredientCoupon])
		if sqlerr.IsNotFound(err) {
			return sqlerr.NotFound(entityRecipeIngredientCoupon)
		}
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting recipe ingredient coupon %d", id)
	}

	return &coupon, nil
}

func (r *RecipeIngredientCouponRepository) CreateRecipeIngredientCoupon(ctx context.Context, payload *model.CreateRecipeIngredientCouponPayload) (*model.RecipeIngredientCoupon, error) {
	var coupon model.RecipeIngredientCoupon

	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO recipe_ingredient_coupons (recipe_ingredient_id, image_url, savings_amount, short_description)
			VALUES ($1, $2, $3, $4)
			RETURNING `+recipeIngredientCouponColumns,
			payload.RecipeIngredientID,
			payload.ImageURL,
			payload.SavingsAmount,
			payload.ShortDescription,
		)
		if err != nil {
			return err
		}

		coupon, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecipeIngredientCoupon])
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating recipe ingredient coupon")
	}

	return &coupon, nil
}

func (r *RecipeIngredientCouponRepository) DeleteRecipeIngredientCoupon(ctx context.Context, id int64) error {
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM recipe_ingredient_coupons WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return sqlerr.NotFound(entityRecipeIngredientCoupon)
		}
		return nil
	})

	return errors.Wrapf(err, "deleting recipe ingredient coupon %d", id)
}

// listCouponsByIngredient returns the coupons of the given ingredients keyed
// by ingredient id.
func listCouponsByIngredient(ctx context.Context, q querier, ingredientIDs []int64) (map[int64][]model.RecipeIngredientCoupon, error) {
	rows, err := q.Query(ctx, `
		SELECT `+recipeIngredientCouponColumns+`
		FROM recipe_ingredient_coupons
		WHERE recipe_ingredient_id = ANY($1)
		ORDER BY id`, ingredientIDs)
	if err != nil {
		return nil, err
	}

	coupons, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeIngredientCoupon])
	if err != nil {
		return nil, err
	}

	byIngredient := make(map[int64][]model.RecipeIngredientCoupon, len(ingredientIDs))
	for _, coupon := range coupons {
		byIngredient[coupon.RecipeIngredientID] = append(byIngredient[coupon.RecipeIngredientID], coupon)
	}
	return byIngredient, nil
}
