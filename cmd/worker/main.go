package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Naveen2070/Hive-Movie/internal/application/expiry"
	"github.com/Naveen2070/Hive-Movie/internal/application/outbox"
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/broker"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/persistence/postgres"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The worker binary runs the two background loops the API server never
// blocks on: the expiry sweep that releases seats held past the
// reservation hold window, and the outbox dispatcher that drains queued
// notifications onto the broker. Both are single-instance; running more
// than one replica is safe but wasteful, since both rely on row-level
// claims rather than leader election.
func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("Starting CinemaOS background worker",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	db, err := postgres.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	publisher, err := broker.NewPublisher(cfg.Broker, log)
	if err != nil {
		log.Fatal("Failed to connect to broker", zap.Error(err))
	}
	defer publisher.Close()

	seatMapCache := cache.New(cfg.SeatMap.CacheTtl)

	showtimeRepo := postgres.NewShowtimeRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)
	uow := postgres.NewUnitOfWork(db)

	expiryWorker := expiry.NewWorker(
		showtimeRepo,
		ticketRepo,
		uow,
		seatMapCache,
		log,
		cfg.Expiry.TickInterval,
		cfg.Reservation.HoldWindow,
	)

	dispatcher := outbox.NewDispatcher(
		outboxRepo,
		publisher,
		log,
		cfg.Outbox.TickInterval,
		cfg.Outbox.StuckTimeout,
		cfg.Outbox.BatchSize,
		cfg.Outbox.MaxRetries,
	)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		expiryWorker.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		dispatcher.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker...")
	cancel()
	wg.Wait()

	log.Info("Worker exited properly")
}
