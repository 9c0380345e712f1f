package router

import (
	"net/http"

	"github.com/deppfellow/recipes-api/internal/handler"
	"github.com/deppfellow/recipes-api/internal/model"
	"github.com/labstack/echo/v4"
)

// resourceRoutes are the four endpoints every resource exposes.
type resourceRoutes struct {
	list   echo.HandlerFunc
	create echo.HandlerFunc
	get    echo.HandlerFunc
	delete echo.HandlerFunc
}

// registerResourceRoutes mounts list/create on "/<resource>/" (the form
// without the trailing slash is accepted too) and get/delete on
// "/<resource>/:id".
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	recipes := h.Recipe
	mount(r, "/recipes", resourceRoutes{
		list:   handler.Handle(recipes.Handler, recipes.ListRecipes, http.StatusOK, model.NewListParams),
		create: handler.Handle(recipes.Handler, recipes.CreateRecipe, http.StatusCreated, model.NewCreateRecipePayload),
		get:    handler.Handle(recipes.Handler, recipes.GetRecipe, http.StatusOK, model.NewIDParam),
		delete: handler.HandleNoContent(recipes.Handler, recipes.DeleteRecipe, http.StatusNoContent, model.NewIDParam),
	})

	images := h.RecipeImage
	mount(r, "/recipe-images", resourceRoutes{
		list:   handler.Handle(images.Handler, images.ListRecipeImages, http.StatusOK, model.NewListParams),
		create: handler.Handle(images.Handler, images.CreateRecipeImage, http.StatusCreated, model.NewCreateRecipeImagePayload),
		get:    handler.Handle(images.Handler, images.GetRecipeImage, http.StatusOK, model.NewIDParam),
		delete: handler.HandleNoContent(images.Handler, images.DeleteRecipeImage, http.StatusNoContent, model.NewIDParam),
	})

	ingredients := h.RecipeIngredient
	mount(r, "/recipe-ingredients", resourceRoutes{
		list:   handler.Handle(ingredients.Handler, ingredients.ListRecipeIngredients, http.StatusOK, model.NewListParams),
		create: handler.Handle(ingredients.Handler, ingredients.CreateRecipeIngredient, http.StatusCreated, model.NewCreateRecipeIngredientPayload),
		get:    handler.Handle(ingredients.Handler, ingredients.GetRecipeIngredient, http.StatusOK, model.NewIDParam),
		delete: handler.HandleNoContent(ingredients.Handler, ingredients.DeleteRecipeIngredient, http.StatusNoContent, model.NewIDParam),
	})

	coupons := h.RecipeIngredientCoupon
	mount(r, "/recipe-ingredient-coupons", resourceRoutes{
		list:   handler.Handle(coupons.Handler, coupons.ListRecipeIngredientCoupons, http.StatusOK, model.NewListParams),
		create: handler.Handle(coupons.Handler, coupons.CreateRecipeIngredientCoupon, http.StatusCreated, model.NewCreateRecipeIngredientCouponPayload),
		get:    handler.Handle(coupons.Handler, coupons.GetRecipeIngredientCoupon, http.StatusOK, model.NewIDParam),
		delete: handler.HandleNoContent(coupons.Handler, coupons.DeleteRecipeIngredientCoupon, http.StatusNoContent, model.NewIDParam),
	})
}

func mount(r *echo.Echo, prefix string, routes resourceRoutes) {
	for _, path := range []string{prefix + "/", prefix} {
		r.GET(path, routes.list)
		r.POST(path, routes.create)
	}
	r.GET(prefix+"/:id", routes.get)
	r.DELETE(prefix+"/:id", routes.delete)
}
