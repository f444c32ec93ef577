package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"orderflow/cmd"
	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/kafka"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/changefeed"
	"orderflow/internal/adapters/out/postgres/migrations"
	"orderflow/internal/adapters/out/postgres/positionstore"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/notify"
	"orderflow/internal/realtime"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := configs.ValidateServer(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := newLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(configs, logger); err != nil {
		logger.Fatal("orderflow stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(configs.DatabaseURL()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	hub := realtime.NewHub(logger)

	writer := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	sender := kafka.NewNotificationSender(writer)
	defer func() {
		if err := sender.Close(); err != nil {
			logger.Warn("failed to close notification sender", zap.Error(err))
		}
	}()
	dispatcher := notify.NewDispatcher(sender, notify.DefaultQueueSize, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		dispatcher.Run(ctx)
	}()

	positions := positionstore.NewGormPositionStore(gormDB)
	var uowFactory *postgres.GormUnitOfWorkFactory
	var positionPub ports.PositionPublisher

	switch configs.ChangeFeed {
	case cmd.ChangeFeedPostgres:
		positions = positions.WithNotify()
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, dispatcher).
			WithChangeFeed(postgres.ChannelOrderChanged)

		listener := changefeed.NewListener(configs.DatabaseURL(), uowFactory.OrderReader(), positions, hub, hub, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("change feed stopped", zap.Error(err))
			}
		}()
	default:
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, dispatcher, hub)
		positionPub = hub
	}

	app := cmd.NewCompositionRoot(gormDB, uowFactory, positions, positionPub)

	jobManager := jobs.NewJobManager(app.CreateExpireDeliveryRequestsCommandHandler(), configs.ExpirySchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(
		app.HTTPHandlers(),
		hub,
		realtime.NewDeliveryTracker(hub, positions, logger),
		httpin.NewOtpLimiter(configs.OtpAttempts, configs.OtpWindow),
		logger,
	)
	e, err := httpin.NewRouter(server, []byte(configs.JWTSecret), logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.ERROR)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("port", configs.HTTPPort), zap.String("change_feed", configs.ChangeFeed))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}

	stop()
	wg.Wait()
	return nil
}
