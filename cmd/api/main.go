package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Naveen2070/Hive-Movie/internal/app/authinfra"
	"github.com/Naveen2070/Hive-Movie/internal/application/auditorium"
	"github.com/Naveen2070/Hive-Movie/internal/application/auth"
	"github.com/Naveen2070/Hive-Movie/internal/application/cinema"
	"github.com/Naveen2070/Hive-Movie/internal/application/movie"
	"github.com/Naveen2070/Hive-Movie/internal/application/reservation"
	"github.com/Naveen2070/Hive-Movie/internal/application/seatmap"
	"github.com/Naveen2070/Hive-Movie/internal/application/showtime"
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/broker"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/persistence/postgres"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/handler"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/tracer"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"
	"github.com/Naveen2070/Hive-Movie/internal/router"
	httpserver "github.com/Naveen2070/Hive-Movie/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           CinemaOS API
// @version         1.0
// @description     Cinema Operating System Backend API
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url     http://www.swagger.io/support
// @contact.email   support@cinemaos.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host            localhost:8080
// @BasePath        /api
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
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

	log.Info("Starting CinemaOS Backend",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Initialize tracer
	tp, err := tracer.New(tracer.Config{
		Enabled:     cfg.Tracer.Enabled,
		ServiceName: cfg.Tracer.ServiceName,
		Endpoint:    cfg.Tracer.Endpoint,
		Insecure:    cfg.Tracer.Insecure,
		SampleRate:  cfg.Tracer.SampleRate,
		Environment: cfg.App.Environment,
		Version:     cfg.App.Version,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("Failed to shutdown tracer", zap.Error(err))
		}
	}()

	// Initialize Database
	db, err := postgres.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seat-map read cache, shared with the reservation write path so it
	// can invalidate entries on every state transition.
	seatMapCache := cache.New(cfg.SeatMap.CacheTtl)

	// Broker publisher backing the transactional outbox dispatcher
	// (cmd/worker). Kept alive here only so handlers constructed in this
	// process share the same connection lifecycle.
	publisher, err := broker.NewPublisher(cfg.Broker, log)
	if err != nil {
		log.Fatal("Failed to connect to broker", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	refreshRepo := postgres.NewRefreshTokenRepository(db)
	resetTokenRepo := postgres.NewPasswordResetTokenRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	cinemaRepo := postgres.NewCinemaRepository(db)
	auditoriumRepo := postgres.NewAuditoriumRepository(db)
	showtimeRepo := postgres.NewShowtimeRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infrastructure Services
	jwtManager := authinfra.NewJWTManager(cfg.JWT)
	passwordManager := authinfra.NewPasswordManager()

	// Application Services
	authService := auth.NewService(
		userRepo,
		refreshRepo,
		resetTokenRepo,
		jwtManager,
		passwordManager,
		log,
		cfg.Email.FrontendURL,
	)
	movieService := movie.NewService(movieRepo, log)
	cinemaService := cinema.NewService(cinemaRepo, log)
	auditoriumService := auditorium.NewService(auditoriumRepo, cinemaRepo, log)
	showtimeService := showtime.NewService(showtimeRepo, auditoriumRepo, log)
	reservationService := reservation.NewService(showtimeRepo, ticketRepo, uow, seatMapCache, log)
	seatMapService := seatmap.NewService(showtimeRepo, seatMapCache)

	// Validator
	requestValidator := validator.New()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, requestValidator)
	healthHandler := handler.NewHealthHandler(cfg, db, publisher)
	movieHandler := handler.NewMovieHandler(movieService, requestValidator)
	cinemaHandler := handler.NewCinemaHandler(cinemaService, requestValidator)
	auditoriumHandler := handler.NewAuditoriumHandler(auditoriumService, requestValidator)
	showtimeHandler := handler.NewShowtimeHandler(showtimeService, requestValidator)
	seatMapHandler := handler.NewSeatMapHandler(seatMapService)
	ticketHandler := handler.NewTicketHandler(reservationService, requestValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, log)

	// Router
	appRouter := router.NewRouter(
		cfg,
		log,
		authMiddleware,
		authHandler,
		healthHandler,
		movieHandler,
		cinemaHandler,
		auditoriumHandler,
		showtimeHandler,
		seatMapHandler,
		ticketHandler,
	)

	// Server
	srv := httpserver.NewServer(cfg.Server, appRouter.Setup(), log)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
