package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-tracker/internal/api"
	"github.com/phrazzld/study-tracker/internal/config"
	"github.com/phrazzld/study-tracker/internal/events"
	"github.com/phrazzld/study-tracker/internal/study"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	eventEmitter events.EventEmitter
	exporter     *study.FileExporter
	collection   *study.Collection
	session      *api.Session
}

// newApplication builds the collection from the configured seed titles and
// wraps it in the HTTP session.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	emitter := events.NewInMemoryEventEmitter(logger)
	exporter := study.NewFileExporter(cfg.Export.Dir, cfg.Export.FileName)

	collection, err := study.NewCollection(cfg.Seed.Titles, exporter, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create study collection: %w", err)
	}

	app := &application{
		config:       cfg,
		logger:       logger,
		eventEmitter: emitter,
		exporter:     exporter,
		collection:   collection,
		session:      api.NewSession(collection, logger),
	}

	collection.Subscribe(events.HandlerFunc(app.logChange))

	logger.Info("study collection ready",
		"item_count", collection.Len(),
		"export_path", exporter.Path())

	return app, nil
}

// logChange records every collection change in the server log.
func (app *application) logChange(ctx context.Context, event *events.ChangeEvent) error {
	app.logger.InfoContext(ctx, "study list changed",
		"event_type", event.Type,
		"version", event.Version,
		"item_count", app.collection.Len())
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	app.logger.Info("final study list state",
		"item_count", app.collection.Len(),
		"version", app.collection.Version())
}
