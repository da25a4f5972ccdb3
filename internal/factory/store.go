// Package factory constructs the store adapter selected by configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wellnest/wellnest/internal/config"
	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/store/memory"
	"github.com/wellnest/wellnest/internal/store/postgres"
	"github.com/wellnest/wellnest/internal/store/sqlite"
)

// NewStore builds the store adapter for cfg.DBDriver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		log.Info().Msg("using in-memory store")
		return memory.New(), nil
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite store")
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("using postgres store")
		return postgres.New(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
