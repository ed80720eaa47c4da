package internal

import (
	"fmt"

	"second-brain/api/config"
	"second-brain/api/db"
	"second-brain/api/internal/service"
	"second-brain/api/pkg/security"
)

type Deps struct {
	Store    *db.Store
	Argon    *security.ArgonHash
	Sessions *security.Sessions
	Accounts *service.Accounts
	Contents *service.Contents
	Shares   *service.Shares
}

// NewDeps wires the store and services. Nothing connects to the database
// here, the store does that on first use.
func NewDeps(cfg *config.Config) (*Deps, error) {
	sessions, err := security.NewSessions(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to set up sessions, %w", err)
	}

	store := db.New(db.Options{
		Driver:         cfg.Database.Driver,
		DSN:            cfg.Database.URL,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		IdleTimeout:    cfg.Database.IdleTimeout,
	})

	argon := security.New()

	return &Deps{
		Store:    store,
		Argon:    argon,
		Sessions: sessions,
		Accounts: service.NewAccounts(store, argon),
		Contents: service.NewContents(store),
		Shares:   service.NewShares(store),
	}, nil
}

func (d *Deps) Close() error {
	return d.Store.Close()
}
