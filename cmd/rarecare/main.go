package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/iftekharanwar/RareCare/internal/api/http"
	"github.com/iftekharanwar/RareCare/internal/api/http/handlers"
	"github.com/iftekharanwar/RareCare/internal/catalog"
	"github.com/iftekharanwar/RareCare/internal/config"
	"github.com/iftekharanwar/RareCare/internal/events"
	"github.com/iftekharanwar/RareCare/internal/observability"
	"github.com/iftekharanwar/RareCare/internal/portal"
	"github.com/iftekharanwar/RareCare/internal/service"
	"github.com/iftekharanwar/RareCare/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	sessions := service.NewSessionService(service.SessionDependencies{
		Catalog:     catalog.Default(),
		Scheduler:   portal.NewTimerScheduler(),
		Dispatcher:  dispatcher,
		Logger:      logger,
		SubmitDelay: cfg.Portal.SubmitDelay(),
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics),
		Session:  handlers.NewSessionHandler(sessions),
		Portal:   handlers.NewPortalHandler(sessions),
		Sessions: sessions,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	sessions.Logout(ctx)
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
