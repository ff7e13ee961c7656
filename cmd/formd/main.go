// Command formd serves the form declarations of a directory over HTTP and
// reloads them when the files change.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formkit/internal/api"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/metrics"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/ruleset"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const serviceName = "formd"

type appConfig struct {
	RulesDir       string        `env:"FORMD_RULES_DIR" envDefault:"./forms"`
	Watch          bool          `env:"FORMD_WATCH" envDefault:"true"`
	ReloadDebounce time.Duration `env:"FORMD_RELOAD_DEBOUNCE" envDefault:"200ms"`
	MaxBodySize    int64         `env:"FORMD_MAX_BODY_SIZE" envDefault:"1048576"`
	MetricsPrefix  string        `env:"FORMD_METRICS_NAMESPACE" envDefault:"formkit"`

	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("formd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	catalog, err := ruleset.LoadDir(cfg.RulesDir)
	if err != nil {
		return err
	}
	log.Info("form declarations loaded", logger.Path(cfg.RulesDir), logger.Count(catalog.Len()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, cfg.MetricsPrefix)

	svc := api.NewService(catalog, validator.Validators(), sanitizer.Filters(),
		api.WithLogger(log.With(logger.Component("api"))),
		api.WithMetrics(m),
		api.WithGatherer(reg),
		api.WithBinder(binder.New(binder.WithMaxBodySize(cfg.MaxBodySize))),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Watch {
		w, err := ruleset.NewWatcher(cfg.RulesDir, catalog,
			ruleset.WithDebounce(cfg.ReloadDebounce),
			ruleset.WithLogger(log.With(logger.Component("watcher"))),
			ruleset.WithReloadHook(func(_ *ruleset.Catalog, err error) { m.CatalogReload(err) }),
		)
		if err != nil {
			return err
		}
		g.Go(func() error { return w.Run(ctx) })
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
	g.Go(func() error {
		return srv.Run(ctx, svc.Handle())
	})

	return g.Wait()
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LogExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}
