package fleetapi

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/autopeer-io/carview/pkg/log"
	"github.com/autopeer-io/carview/pkg/options"
)

// Config is the runtime configuration of the development fleet API.
type Config struct {
	HttpOptions    *options.HttpOptions
	FixtureOptions *options.FixtureOptions
}

// FleetAPI bundles the HTTP server with its fixture source.
type FleetAPI struct {
	server  *Server
	store   *Store
	fixture string
	watch   bool
}

// New loads the initial records and builds the server.
func (cfg *Config) New() (*FleetAPI, error) {
	records := SeedRecords()
	if path := cfg.FixtureOptions.Path; path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		records = loaded
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}

	return &FleetAPI{
		server:  NewServer(cfg.HttpOptions, store),
		store:   store,
		fixture: cfg.FixtureOptions.Path,
		watch:   cfg.FixtureOptions.Watch,
	}, nil
}

// Run serves until ctx is cancelled or a component fails.
func (f *FleetAPI) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return f.server.Start(ctx)
	})

	if f.fixture != "" && f.watch {
		g.Go(func() error {
			return Watch(ctx, f.store, f.fixture)
		})
	}

	log.Info("Fleet API running", "fixtures", f.fixture, "watch", f.watch)
	return g.Wait()
}
