/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go creates the catalog and hands it to extensions.
//
// Extensions register during init() but are only initialised once a command
// that needs a catalog runs. The catalog is created once per process and
// shared through the extension Context.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/catalog"
	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/content"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/progress"
)

// ErrNoSource is returned when no catalog base is configured anywhere.
var ErrNoSource = errors.New("no source configured")

// spinnerInterval is the spinner frame rate while the manifest is fetched.
const spinnerInterval = 100 * time.Millisecond

// commandSets says which commands skip the catalog or load it themselves.
var commandSets extension.CommandSets

var (
	extContext extension.Context
	extService *catalog.Service
	initOnce   sync.Once
	initErr    error
)

// Context returns the shared extension context, nil before initialisation.
func Context() extension.Context { return extContext }

// Messages returns the localiser for the resolved language. It works for
// catalogless commands too.
func Messages() *i18n.Localizer {
	if extContext != nil {
		return extContext.Messages()
	}
	cfg, _ := config.Load()
	code, err := Lang(cfg)
	if err != nil {
		code = i18n.Default
	}
	return i18n.New(code)
}

// initExtensions resolves source, variant and language, creates the
// catalog and injects the shared context into every Initializable extension.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		code, err := Lang(cfg)
		if err != nil {
			initErr = err
			return
		}

		base := Source(cfg)
		if base == "" {
			initErr = fmt.Errorf("%w: use --source, %s or 'codefind config source.base <url>'", ErrNoSource, EnvSource)
			return
		}

		policy := content.Sequential
		if Concurrent(cfg) {
			policy = content.Concurrent
		}
		svc, err := catalog.New(catalog.Options{
			Source:   base,
			Variant:  Variant(cfg),
			Manifest: Manifest(cfg),
			Policy:   policy,
			Workers:  cfg.Workers(),
			Timeout:  cfg.Timeout(),
		})
		if err != nil {
			initErr = err
			return
		}
		extService = svc

		log.SetProject(base)

		extContext = extension.NewContext(svc, cfg, i18n.New(code))

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// loadCatalog fetches the manifest behind a spinner and the bodies behind a
// progress line. A manifest failure comes back as the localised
// error-loading message wrapping the cause.
func loadCatalog(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	msg := extContext.Messages()

	spin := progress.NewSpinner(msg.T(i18n.Loading))
	spin.Start()
	stop := make(chan struct{})
	var stopOnce sync.Once
	stopSpinner := func() {
		stopOnce.Do(func() {
			close(stop)
			spin.Stop()
		})
	}
	go func() {
		t := time.NewTicker(spinnerInterval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				spin.Tick()
			}
		}
	}()

	var bar *progress.Progress
	err := extService.Load(ctx,
		catalog.WithManifest(func([]string) { stopSpinner() }),
		catalog.WithProgress(func(total int) content.Reporter {
			bar = progress.New(msg.T(i18n.Loading), total)
			return bar
		}),
	)
	stopSpinner()
	if bar != nil {
		bar.Done()
	}

	log.Event("catalog:load", "load").
		Variant(extService.Variant().Name).
		Resolved(extService.Source()).
		Count(extService.Len()).
		Write(err)

	_ = extension.Dispatch(extContext, extension.CatalogLoadEvent{
		Source:  extService.Source(),
		Variant: extService.Variant().Name,
		Count:   extService.Len(),
		Err:     err,
	})

	if err != nil {
		return fmt.Errorf("%s %w", msg.T(i18n.ErrorLoading), err)
	}
	return nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		commandSets = extension.Sets()
	})
}
