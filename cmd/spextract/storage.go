package main

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/spextract/pkg/config"
	"github.com/dmitrymomot/spextract/pkg/store"
)

// Storage drivers.
const (
	driverNone  = "none"
	driverLocal = "local"
	driverS3    = "s3"
)

type storageConfig struct {
	Driver   string         `env:"DRIVER" envDefault:"local"`
	LocalDir string         `env:"LOCAL_DIR" envDefault:"./spextract-runs"`
	S3       store.S3Config `envPrefix:"S3_"`
}

// openStorage builds the run report store from SPEX_STORE_* variables.
// It returns nil when the driver is "none".
func openStorage(ctx context.Context, envFiles []string) (store.Storage, error) {
	var cfg storageConfig
	if err := config.Load(&cfg, config.WithPrefix(envPrefix+"STORE_"), config.WithEnvFiles(envFiles...)); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case driverNone:
		return nil, nil
	case driverLocal:
		return store.NewLocalStorage(cfg.LocalDir)
	case driverS3:
		return store.NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver %q: must be %s, %s or %s", cfg.Driver, driverNone, driverLocal, driverS3)
	}
}
