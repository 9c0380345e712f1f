package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/recipes-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "recipe_images" violates foreign key constraint "recipe_images_recipe_id_fkey"`,
		Detail:         `Key (recipe_id)=(999) is not present in table "recipes".`,
		TableName:      "recipe_images",
		ConstraintName: "recipe_images_recipe_id_fkey",
	}

	httpErr := requireHTTPError(t, HandleError(fmt.Errorf("insert recipe image: %w", pgErr)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECIPE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Recipe does not exist", httpErr.Message)
}

func TestHandleError_ForeignKeyViolationNamesParentTable(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Detail:         `Key (recipe_ingredient_id)=(999) is not present in table "recipe_ingredients".`,
		TableName:      "recipe_ingredient_coupons",
		ConstraintName: "recipe_ingredient_coupons_recipe_ingredient_id_fkey",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, "RECIPE_INGREDIENT_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Recipe Ingredient does not exist", httpErr.Message)
}

func TestHandleError_ForeignKeyViolationFromConstraintName(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		TableName:      "recipe_ingredient_coupons",
		ConstraintName: "recipe_ingredient_coupons_recipe_ingredient_id_fkey",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, "RECIPE_INGREDIENT_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Recipe Ingredient does not exist", httpErr.Message)
}

func TestHandleError_ForeignKeyViolationOnDelete(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Message:        `update or delete on table "recipes" violates foreign key constraint "recipe_images_recipe_id_fkey" on table "recipe_images"`,
		Detail:         `Key (id)=(1) is still referenced from table "recipe_images".`,
		TableName:      "recipes",
		ConstraintName: "recipe_images_recipe_id_fkey",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECIPE_IN_USE", httpErr.Code)
	assert.Equal(t, "The Recipe is still referenced by a Recipe Image", httpErr.Message)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "recipes",
		ConstraintName: "recipes_title_key",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECIPE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Recipe with this Title already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		TableName:  "recipe_images",
		ColumnName: "recipe_id",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, "RECIPE_IMAGE_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Recipe Id is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "recipe_id", httpErr.Errors[0].Field)
}

func TestHandleError_UnknownPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "XX000", Message: "internal error"}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestHandleError_NotFound(t *testing.T) {
	httpErr := requireHTTPError(t, HandleError(NotFound("recipe_ingredient")))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Recipe Ingredient not found", httpErr.Message)

	wrapped := fmt.Errorf("get recipe: %w", NotFound("recipe"))
	httpErr = requireHTTPError(t, HandleError(wrapped))
	assert.Equal(t, "Recipe not found", httpErr.Message)

	httpErr = requireHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", httpErr.Message)

	httpErr = requireHTTPError(t, HandleError(sql.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("custom", false, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := requireHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("recipe")))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, ErrCode(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23505"})))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("SOMETHING"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "url", extractColumnForUniqueViolation("unique_recipe_images_url"))
	assert.Equal(t, "title", extractColumnForUniqueViolation("recipes_title_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("recipes_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
