package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/aldesouky/seedarr/config"
	"github.com/aldesouky/seedarr/pkg/downloader"
	mio "github.com/aldesouky/seedarr/pkg/io"
	"github.com/aldesouky/seedarr/pkg/library"
	"github.com/aldesouky/seedarr/pkg/manager"
	"github.com/aldesouky/seedarr/pkg/render"
	"github.com/aldesouky/seedarr/pkg/resolver"
	"github.com/aldesouky/seedarr/pkg/source/arabseed"
	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite"
)

// buildManager wires the whole pipeline from configuration. Every command
// that touches the catalog goes through here.
func buildManager(ctx context.Context) (manager.MediaManager, config.Config, error) {
	var m manager.MediaManager

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return m, cfg, fmt.Errorf("failed to read configuration: %w", err)
	}

	store, err := buildStorage(ctx, cfg)
	if err != nil {
		return m, cfg, err
	}

	factory, err := render.NewFactory(render.Config{
		Implementation: cfg.Render.Implementation,
		Headless:       cfg.Render.Headless,
		UserAgent:      cfg.Render.UserAgent,
	})
	if err != nil {
		return m, cfg, err
	}

	discovery := arabseed.New(factory, arabseed.WithBaseURL(cfg.Source.BaseURL))

	var resolverOpts []resolver.Option
	if cfg.Resolver.MaxAttempts > 0 {
		resolverOpts = append(resolverOpts, resolver.WithMaxAttempts(cfg.Resolver.MaxAttempts))
	}
	if cfg.Resolver.Concurrency > 0 {
		resolverOpts = append(resolverOpts, resolver.WithConcurrency(cfg.Resolver.Concurrency))
	}
	if cfg.Resolver.GateCeiling > 0 {
		resolverOpts = append(resolverOpts, resolver.WithGateCeiling(cfg.Resolver.GateCeiling))
	}
	if len(cfg.Resolver.AdDomains) > 0 {
		resolverOpts = append(resolverOpts, resolver.WithAdDomains(cfg.Resolver.AdDomains))
	}
	res := resolver.New(factory, resolverOpts...)

	client, err := downloader.NewClientFactory().NewClient(downloader.Config{
		Implementation: cfg.Downloader.Implementation,
		Scheme:         cfg.Downloader.Scheme,
		Host:           cfg.Downloader.Host,
		Port:           cfg.Downloader.Port,
	})
	if err != nil {
		return m, cfg, fmt.Errorf("failed to create download client: %w", err)
	}

	lib := library.New(&mio.MediaFileSystem{}, library.Roots{
		SeriesEnglish: cfg.Library.SeriesEnglishDir,
		SeriesArabic:  cfg.Library.SeriesArabicDir,
		MovieEnglish:  cfg.Library.MovieEnglishDir,
		MovieArabic:   cfg.Library.MovieArabicDir,
	})

	m = manager.New(store, discovery, res, client, lib, &mio.MediaFileSystem{}, cfg)
	return m, cfg, nil
}

func buildStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return store, nil
}
