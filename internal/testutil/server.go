package testutil

import (
	"bytes"

	"github.com/deppfellow/recipes-api/internal/config"
	"github.com/deppfellow/recipes-api/internal/server"
	"github.com/deppfellow/recipes-api/internal/service"
	"github.com/rs/zerolog"
)

// NewServer returns a server container without database or Redis, logging
// into logs when it is non-nil.
func NewServer(logs *bytes.Buffer) *server.Server {
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}

	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "8080",
				ReadTimeout:        30,
				WriteTimeout:       30,
				IdleTimeout:        60,
				CORSAllowedOrigins: []string{"*"},
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

// NewServices wires every service to the same MemStore.
func NewServices(s *server.Server, store *MemStore) *service.Services {
	return &service.Services{
		Recipe:                 service.NewRecipeService(s, store),
		RecipeImage:            service.NewRecipeImageService(s, store),
		RecipeIngredient:       service.NewRecipeIngredientService(s, store),
		RecipeIngredientCoupon: service.NewRecipeIngredientCouponService(s, store),
	}
}
