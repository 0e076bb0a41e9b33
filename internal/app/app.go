package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-report/internal/aggregators"
	"log-report/internal/classifiers"
	"log-report/internal/consoles"
	"log-report/internal/fetchers"
	internalhttp "log-report/internal/http"
	"log-report/internal/parsers"
	"log-report/internal/reporters"
	"log-report/internal/reports"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
	"log-report/internal/shared/ulid"
	"log-report/internal/stores"
)

const appName = "log-report"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService reports.ReportService
	server        *http.Server
	closers       []io.Closer
}

// New creates and initializes a new App instance. Logs are written to logOutput and,
// when configured, error records are also appended to the error log file.
func New(config *configs.Config, logOutput io.Writer) (*App, error) {
	app := &App{config: config}

	logWriter := logOutput
	if config.Log.ErrorFile != "" {
		errorWriter, closer, err := loggers.OpenErrorFile(config.Log.ErrorFile)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, closer)
		logWriter = loggers.Tee(logOutput, errorWriter)
	}

	appLogger, err := loggers.New(config.Log.Level, logWriter)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize classifier
	rules, err := classifiers.CompileBrowserRules(config.Classifier.Rules)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("failed to compile browser rules: %w", err)
	}
	classifier := classifiers.NewBrowserClassifier(rules)
	app.appLogger.Debug().
		Strs("browser_rules", classifier.RuleNames()).
		Msg("browser classifier ready")

	// Initialize metadata store
	metadataStore, err := newMetadataStore(config.Metadata)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("failed to initialize metadata store: %w", err)
	}

	// Initialize report services; the served one never reads local files
	httpClient := &http.Client{Timeout: time.Duration(config.Fetch.Timeout) * time.Second}
	newReportService := func(schemes []string) reports.ReportService {
		return reports.NewReportService(
			fetchers.NewFetcher(httpClient, config.Fetch.MaxBytes, schemes),
			parsers.NewRecordParser(),
			aggregators.NewAggregator(classifier),
			reporters.NewReporter(),
			metadataStore,
		)
	}
	app.reportService = newReportService(fetchers.SchemesAll)

	// Initialize http router for serve mode
	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(newReportService(fetchers.SchemesRemote), httpLogger)

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return app, nil
}

func newMetadataStore(config configs.MetadataConfig) (stores.MetadataStore, error) {
	if !config.Enabled {
		return stores.NewNopMetadataStore(), nil
	}
	fileStorage, err := filestorages.NewFileStorage(config.RootDir)
	if err != nil {
		return nil, err
	}
	return stores.NewMetadataStore(fileStorage, config.FileName, config.Format)
}

// Run generates one report for source and prints it through console. A failed run
// prints the failure message instead and returns the ServiceError.
func (app *App) Run(ctx context.Context, source string, console consoles.Console, interactive bool) error {
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldSource, source).
		Logger()
	ctx = runLogger.WithContext(ctx)

	report, err := app.reportService.Generate(ctx, source)
	if err != nil {
		event := runLogger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
		}
		event.Msgf("Error processing <%s>", source)

		if printErr := console.PrintFailure(source); printErr != nil {
			return errors.Join(err, printErr)
		}
		return err
	}

	runLogger.Info().Msg("report generated")
	if interactive {
		return console.Interact(report)
	}
	return console.PrintAll(report)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, metadata_enabled=%t)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Metadata.Enabled)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// Close exports metrics to the configured textfile and releases open log files.
func (app *App) Close() error {
	var errs []error
	if path := app.config.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			app.appLogger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
			errs = append(errs, err)
		}
	}
	errs = append(errs, app.closeAll())
	return errors.Join(errs...)
}

func (app *App) closeAll() error {
	var errs []error
	for _, closer := range app.closers {
		errs = append(errs, closer.Close())
	}
	app.closers = nil
	return errors.Join(errs...)
}
