package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"shoeprice/config"
	qhttp "shoeprice/http"
	"shoeprice/logger"
	"shoeprice/predictor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Logger
	logg, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Encoding:   cfg.Log.Encoding,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logg.Sync()

	// 3. Model. A failed load is memoized and shown on the page instead of the form.
	loader := predictor.NewLoader(cfg.Model.Path, logg)
	if _, err := loader.Load(); err != nil {
		logg.Error("model_unavailable", zap.String("path", loader.Path()), zap.Error(err))
	}

	sessions, err := qhttp.NewSessionStore(cfg.Session.CacheSize, cfg.Session.CookieName)
	if err != nil {
		logg.Fatal("session_store_init_failed", zap.Error(err))
	}
	app := qhttp.NewApp(loader, sessions, logg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Model.Watch {
		watcher, err := predictor.NewWatcher(cfg.Model.Path, logg)
		if err != nil {
			logg.Warn("model_watch_disabled", zap.Error(err))
		} else {
			defer watcher.Close()
			app.SetStaleCheck(watcher.Stale)
			go watcher.Run(ctx)
		}
	}

	// 4. Start HTTP server
	server := qhttp.NewServer(qhttp.ServerConfig{
		Port:           cfg.Http.Port,
		Timeout:        cfg.Http.Timeout,
		AllowedOrigins: cfg.Http.AllowedOrigins,
	}, app, logg)
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	// 5. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s := <-quit
	logg.Info("shutdown_signal", zap.String("signal", s.String()))

	if err := server.Stop(); err != nil {
		logg.Error("http_shutdown_error", zap.Error(err))
	}

	logg.Info("exiting")
}
