// Command regdoc reads regulatory documents by reference.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/regdoc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/cli"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
	"github.com/custodia-labs/regdoc/internal/core/services"
	"github.com/custodia-labs/regdoc/internal/documents"
	"github.com/custodia-labs/regdoc/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters for the configured backend. The library is
// loaded lazily, on the first command that needs it.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := effectiveSettings(settingsService, opts)
	if err != nil {
		return nil, nil, err
	}
	entries, err := services.Entries(settings)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config: %s", settingsService.Path())
	logger.Debug("backend: %s, documents: %d", settings.Backend, len(entries))

	csvSource := csvfile.NewTableSource(settings.CorpusDir, corpusFiles(entries))

	var (
		source driven.TableSource = csvSource
		store  *sqlite.Store
		closer = func() error { return nil }
	)
	if settings.Backend == domain.BackendSQLite || opts.Database {
		store, err = sqlite.NewStore(settings.DatabaseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening corpus database: %w", err)
		}
		closer = store.Close
		logger.Debug("database: %s", store.Path())
	}
	if settings.Backend == domain.BackendSQLite {
		source = store.CorpusStore()
	}

	loader := services.NewLibraryLoader(source, entries)
	svc := &cli.Services{
		Corpus:   services.NewCorpusService(loader),
		Toc:      services.NewTocService(loader),
		Settings: settingsService,
	}
	if store != nil {
		svc.Import = services.NewImportService(csvSource, store.CorpusStore())
	}
	return svc, closer, nil
}

// effectiveSettings applies the command line overrides to the stored settings.
func effectiveSettings(settingsService *services.SettingsService, opts cli.Options) (domain.Settings, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if opts.Backend != "" {
		backend := domain.Backend(opts.Backend)
		if !backend.IsValid() {
			return settings, fmt.Errorf("--backend: unknown backend %q: %w", opts.Backend, domain.ErrInvalidInput)
		}
		settings.Backend = backend
	}
	if opts.CorpusDir != "" {
		settings.CorpusDir = opts.CorpusDir
	}
	return settings, nil
}

func corpusFiles(entries []documents.Entry) map[string]string {
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		files[e.ID] = e.File
	}
	return files
}
