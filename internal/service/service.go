// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// requestLogger returns the request-scoped logger stored on ctx by the
// context middleware, or fallback when there is none.
func requestLogger(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled || fallback == nil {
		return l
	}
	return fallback
}
