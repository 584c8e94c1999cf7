package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nobuchiyo/studylens/internal/adapters/http/api"
	repository "github.com/nobuchiyo/studylens/internal/adapters/repository"
	app "github.com/nobuchiyo/studylens/internal/app"
	"github.com/nobuchiyo/studylens/internal/config"
	"github.com/nobuchiyo/studylens/internal/domain/normalize"
	"github.com/nobuchiyo/studylens/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable default Go metrics collection; the custom registry carries
	// the service's own metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logging: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to build record store", logger.Error(err))
		return
	}

	normalizer := normalize.New(normalize.WithAliases(aliasesFromConfig(cfg)))

	svc := app.New(
		app.WithStore(store),
		app.WithNormalizer(normalizer),
		app.WithDepartments(cfg.Departments),
		app.WithStyleVocabulary(cfg.StyleVocabulary),
		app.WithLogger(log),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.RequestLogMiddleware(mux, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("store", cfg.Store),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown failed", logger.Error(err))
		return
	}
	log.Info(shutdownCtx, "shutdown complete")
}

// buildStore selects the record store backend from configuration.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Store {
	case config.StoreSheets:
		return repository.NewSheetStore(ctx,
			repository.WithSpreadsheetID(cfg.SpreadsheetID),
			repository.WithReadRange(cfg.SheetRange),
			repository.WithCredentialsFile(cfg.CredentialsFile),
		)
	default:
		return repository.NewMemoryStore(), nil
	}
}

// aliasesFromConfig converts the configured extra aliases onto the
// normalizer's field keys.
func aliasesFromConfig(cfg *config.Config) normalize.Aliases {
	out := make(normalize.Aliases, len(cfg.ExtraAliases))
	for field, names := range cfg.ExtraAliases {
		out[normalize.Field(field)] = names
	}
	return out
}
