package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Recipe not found", true, nil)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Recipe not found", err.Error())
	assert.True(t, err.Override)

	code := "RECIPE_NOT_FOUND"
	assert.Equal(t, code, NewNotFoundError("gone", false, &code).Code)
}

func TestNewBadRequestError(t *testing.T) {
	fields := []FieldError{{Field: "recipe_id", Error: "is required"}}
	err := NewBadRequestError("Validation failed", true, nil, fields, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, fields, err.Errors)
	assert.Nil(t, err.Action)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.False(t, err.Override)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("Rate limit exceeded")
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewNotFoundError("not found", false, nil)
	copied := base.WithMessage("Recipe not found")

	assert.Equal(t, "not found", base.Message)
	assert.Equal(t, "Recipe not found", copied.Message)
	assert.Equal(t, base.Status, copied.Status)
	assert.Equal(t, base.Code, copied.Code)
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("loading recipe: %w", NewNotFoundError("Recipe not found", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("title is required"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: title is required", err.Message)
}
