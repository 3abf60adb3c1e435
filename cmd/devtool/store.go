package main

import (
	"github.com/osse101/WeaponPaints_Go/internal/bootstrap"
	"github.com/osse101/WeaponPaints_Go/internal/config"
)

// openStore loads the application configuration and opens its store
func openStore() (*config.Config, *bootstrap.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, store, nil
}
