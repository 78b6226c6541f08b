package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/alertbox"
	"github.com/dmitrymomot/alertbox/pkg/config"
	"github.com/dmitrymomot/alertbox/pkg/httpserver"
	"github.com/dmitrymomot/alertbox/pkg/logger"
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

// DemoConfig holds the settings of the demo server.
type DemoConfig struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	HTTP   httpserver.Config
	Alerts alertbox.Config
}

func main() {
	var cfg DemoConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, "alertbox-demo"),
		logger.WithContextExtractors(requestID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plugin, err := alertbox.NewFromConfig(cfg.Alerts, alertbox.WithLogger(log))
	if err != nil {
		log.Error("failed to create alertbox plugin", logger.Error(err))
		os.Exit(1)
	}

	if cfg.Alerts.ThemeFile != "" && cfg.Alerts.WatchTheme {
		go func() {
			if err := theme.Watch(ctx, cfg.Alerts.ThemeFile, plugin.Colors().Set, log); err != nil {
				log.Error("theme watcher stopped", logger.Error(err))
			}
		}()
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newRouter(plugin, cfg.Alerts, log)); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
