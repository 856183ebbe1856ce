package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"logmetrics/internal/aggregators"
	"logmetrics/internal/analytics"
	"logmetrics/internal/batchers"
	"logmetrics/internal/exporters"
	internalhttp "logmetrics/internal/http"
	"logmetrics/internal/ingest"
	"logmetrics/internal/models"
	"logmetrics/internal/shared/configs"
	"logmetrics/internal/shared/loggers"
	"logmetrics/internal/shared/metrics"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	source     *ingest.NatsSource
	batcher    *batchers.Batcher
	aggregator *aggregators.Aggregator

	pipelineCtx    context.Context
	pipelineCancel context.CancelFunc
	pipelineDone   chan struct{}
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "logmetrics").
		Logger()

	// Initialize the aggregation store and expose it on /metrics. The
	// collector reduces the store freshly on every scrape.
	store := analytics.NewStore()
	metrics.MustRegister(exporters.NewCollector(store))

	// Initialize pipeline stages
	ingestLogger := appLogger.With().Str(loggers.FieldComponent, "ingest").Logger()
	source := ingest.NewNatsSource(config.Nats.URL, config.Nats.Subject, ingest.RetryPolicy{
		InitialInterval: time.Duration(config.Ingest.RetryInitialMillis) * time.Millisecond,
		MaxInterval:     time.Duration(config.Ingest.RetryMaxDelaySeconds) * time.Second,
		MaxAttempts:     uint64(config.Ingest.RetryMaxAttempts),
	}, ingestLogger)

	batchLogger := appLogger.With().Str(loggers.FieldComponent, "batcher").Logger()
	batcher := batchers.New(config.Batch.Size, time.Duration(config.Batch.FlushIntervalSeconds)*time.Second, batchLogger)

	aggregationLogger := appLogger.With().Str(loggers.FieldComponent, "aggregator").Logger()
	aggregator := aggregators.New(store, aggregationLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:     config,
		appLogger:  appLogger,
		server:     server,
		source:     source,
		batcher:    batcher,
		aggregator: aggregator,
	}, nil
}

// Start starts the aggregation pipeline and then serves HTTP in a blocking
// manner. An ingest source that gives up past its retry budget is fatal:
// the pipeline has nothing to process without input.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting logmetrics service on port %d (log_level=%s, nats_subject=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Nats.Subject)

	app.pipelineCtx, app.pipelineCancel = context.WithCancel(context.Background())
	app.pipelineDone = make(chan struct{})

	lines := make(chan string, app.config.Batch.LineBuffer)
	batches := make(chan []models.MetricFact, app.config.Batch.BatchBuffer)

	group, groupCtx := errgroup.WithContext(app.pipelineCtx)
	group.Go(func() error {
		return app.source.Run(groupCtx, lines)
	})
	group.Go(func() error {
		app.batcher.Run(groupCtx, lines, batches)
		return nil
	})
	group.Go(func() error {
		app.aggregator.Run(batches)
		return nil
	})

	go func() {
		defer close(app.pipelineDone)
		if err := group.Wait(); err != nil {
			app.appLogger.Fatal().Err(err).Msg("ingest source gave up, shutting down")
		}
	}()

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. The ingest source is
// stopped first so the batcher can flush its final partial batch and the
// aggregator can drain what is already in flight.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop the ingest source; end-of-stream propagates down the pipeline
	app.appLogger.Info().Msg("Stopping pipeline...")
	if app.pipelineCancel != nil {
		app.pipelineCancel()
	}

	// 2) Wait for the pipeline to drain
	if app.pipelineDone != nil {
		select {
		case <-app.pipelineDone:
			app.appLogger.Info().Msg("Pipeline drained")
		case <-ctx.Done():
			app.appLogger.Warn().Msg("Pipeline drain timed out")
		}
	}

	// 3) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
