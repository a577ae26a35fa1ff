package main

import (
	"context"
	"fmt"

	"github.com/nhle/worklance/internal/api"
	"github.com/nhle/worklance/internal/credential"
	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/session"
	"github.com/nhle/worklance/internal/store"
)

// deps is everything a command needs to talk to the backend and the
// local session.
type deps struct {
	client *api.Client
	store  store.Store
	state  *session.State
}

func (d *deps) Close() {
	if d.store != nil {
		_ = d.store.Close()
	}
}

func loadConfig(opts *options) (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	return cfg, nil
}

func openStore(cfg *model.AppConfig) (store.Store, error) {
	if cfg.Storage.SessionBackend == model.SessionBackendKeyring {
		return credential.OpenVault()
	}
	return store.NewSQLiteStore(cfg.Storage.Path)
}

// wire opens the configured store and restores the persisted session.
func wire(ctx context.Context, cfg *model.AppConfig, log logging.Logger) (*deps, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.SessionBackend, err)
	}

	state := session.New(s, log)
	if err := state.Restore(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	return &deps{
		client: api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log),
		store:  s,
		state:  state,
	}, nil
}
