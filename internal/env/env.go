// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/cooksapp/cooks/internal/blobstore"
	"github.com/cooksapp/cooks/internal/config"
	"github.com/cooksapp/cooks/internal/database"
	"github.com/cooksapp/cooks/internal/email"
	"github.com/cooksapp/cooks/internal/log"
)

type Env struct {
	Logger   *slog.Logger
	Database *database.Database
	Notifier email.Notifier
	Blobs    blobstore.Store
	Config   *config.Config
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx injects the environment into a context.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx extracts the environment from a context. A null environment is
// returned if none was injected.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return Null()
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
		Config: &config.Config{},
	}
}
