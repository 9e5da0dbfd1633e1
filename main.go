package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Ariffin97/portal-mpa-sub002/internals/configs"
	database "github.com/Ariffin97/portal-mpa-sub002/internals/databases"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/scheduler"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/service"
	helper "github.com/Ariffin97/portal-mpa-sub002/internals/helpers"
	middlewares "github.com/Ariffin97/portal-mpa-sub002/internals/middlewares"
	routes "github.com/Ariffin97/portal-mpa-sub002/internals/route"
)

func main() {
	configs.LoadEnv()

	flags := configs.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := configs.Load(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := configs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	startedAt := time.Now()

	// store connect (retried) + warm-up
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := database.OpenStore(connectCtx, cfg, logger.Named("store"))
	cancelConnect()
	if err != nil {
		logger.Fatal("open tournament store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()
	database.WarmUp(appCtx, store, logger.Named("store"))

	// scheduler after the store is ready
	health := scheduler.NewStoreHealth(store, 3*time.Second, logger.Named("health"))
	healthCron, err := scheduler.StartStoreHealthScheduler(health, cfg.HealthCron, logger)
	if err != nil {
		logger.Fatal("start health scheduler", zap.Error(err))
	}

	compat := service.NewCompatLayer(store,
		service.WithLocation(cfg.Location),
		service.WithLogger(logger.Named("compat")),
	)

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, logger)

	routes.SetupRoutes(app, routes.Deps{
		Tournaments: compat,
		Health:      health,
		Log:         logger,
		Environment: configs.GetEnv("RAILWAY_ENVIRONMENT", "local"),
		StartedAt:   startedAt,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr()), zap.String("store", cfg.StoreDriver))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + close the store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-healthCron.Stop().Done()
	stopApp()
	if err := store.Close(ctx); err != nil {
		logger.Warn("close store", zap.Error(err))
	}
}
