package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ridelink/dispatch/internal/pkg/config"
	"github.com/ridelink/dispatch/internal/pkg/database"
	"github.com/ridelink/dispatch/internal/pkg/fare"
	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/health"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/internal/pkg/server"
	dispatchgw "github.com/ridelink/dispatch/services/dispatch/gateway"
	dispatchhandler "github.com/ridelink/dispatch/services/dispatch/handler"
	dispatchrepo "github.com/ridelink/dispatch/services/dispatch/repository"
	dispatchuc "github.com/ridelink/dispatch/services/dispatch/usecase"
	"github.com/ridelink/dispatch/services/schedule"
	schedulegw "github.com/ridelink/dispatch/services/schedule/gateway"
	schedulehandler "github.com/ridelink/dispatch/services/schedule/handler"
	schedulerepo "github.com/ridelink/dispatch/services/schedule/repository"
	scheduleuc "github.com/ridelink/dispatch/services/schedule/usecase"
)

const serviceName = "dispatch-service"

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.New(cfg.Logger, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	logger.SetGlobal(appLogger)
	defer appLogger.Sync()

	shutdown := server.NewShutdownManager()

	postgres, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return postgres.Close() })

	redis, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return redis.Close() })

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	producer := natspkg.NewProducer(natsClient)

	boundary := geo.NewBoundary(cfg.Geo)
	calculator := fare.NewCalculator(cfg.Fare)

	rideRepo := dispatchrepo.NewRideRepository(cfg, postgres.GetDB())
	registry := dispatchrepo.NewDriverRegistry(redis)
	dispatchGateway := dispatchgw.NewDispatchGW(producer)
	dispatchUC := dispatchuc.NewDispatchUC(cfg, boundary, calculator, rideRepo, registry, dispatchGateway)

	scheduleRepo := schedulerepo.NewScheduleRepository(cfg, postgres.GetDB())
	scheduleGateway := schedulegw.NewScheduleGW(producer)
	scheduleUC := scheduleuc.NewScheduleUC(cfg, boundary, calculator, scheduleRepo, scheduleGateway, dispatchUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	health.RegisterHealthEndpoints(e, serviceName)

	dh := dispatchhandler.NewHandler(cfg, dispatchUC, natsClient)
	dh.RegisterRoutes(e)
	if err := dh.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	sh := schedulehandler.NewHandler(cfg, scheduleUC)
	sh.RegisterRoutes(e)

	// Internal sweep driver; deployments with an external clock can disable it
	// and call /internal/tick instead.
	tickCtx, stopTicker := context.WithCancel(context.Background())
	shutdown.Register(func(context.Context) error {
		stopTicker()
		return nil
	})
	go runScheduleSweep(tickCtx, scheduleUC, cfg.Schedule.TickInterval)

	srv := server.NewGracefulServer(e, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	shutdown.Shutdown(ctx)
}

func runScheduleSweep(ctx context.Context, uc schedule.ScheduleUC, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			tickCtx, cancel := context.WithTimeout(ctx, interval)
			if err := uc.Tick(tickCtx, now.UTC()); err != nil {
				logger.Error("Schedule sweep failed", logger.Err(err))
			}
			cancel()
		}
	}
}
