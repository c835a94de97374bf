//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/broker"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/persistence/postgres"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/tracer"
	"github.com/Naveen2070/Hive-Movie/internal/provider"
	httpserver "github.com/Naveen2070/Hive-Movie/internal/server"

	"github.com/google/wire"
)

// Application holds all the components needed to run the API server
type Application struct {
	Server    *httpserver.Server
	Logger    *logger.Logger
	DB        *postgres.Database
	Tracer    *tracer.Tracer
	Publisher *broker.Publisher
	Config    *config.Config
}

// InitializeApplication wires up all dependencies using Wire
func InitializeApplication(configPath string) (*Application, error) {
	wire.Build(
		// Config
		provider.ProvideConfig,

		// Infrastructure
		provider.ProvideLogger,
		provider.ProvideTracer,
		provider.ProvideDatabase,
		provider.ProvideSeatMapCache,
		provider.ProvideBrokerPublisher,
		provider.ProvideValidator,

		// Repositories
		provider.ProvideUserRepository,
		provider.ProvideRefreshTokenRepository,
		provider.ProvidePasswordResetTokenRepository,
		provider.ProvideMovieRepository,
		provider.ProvideCinemaRepository,
		provider.ProvideAuditoriumRepository,
		provider.ProvideShowtimeRepository,
		provider.ProvideTicketRepository,
		provider.ProvideOutboxRepository,
		provider.ProvideUnitOfWork,

		// Services
		provider.ProvideJWTManager,
		provider.ProvidePasswordManager,
		provider.ProvideAuthService,
		provider.ProvideMovieService,
		provider.ProvideCinemaService,
		provider.ProvideAuditoriumService,
		provider.ProvideShowtimeService,
		provider.ProvideReservationService,
		provider.ProvideSeatMapService,

		// Handlers
		provider.ProvideAuthHandler,
		provider.ProvideHealthHandler,
		provider.ProvideMovieHandler,
		provider.ProvideCinemaHandler,
		provider.ProvideAuditoriumHandler,
		provider.ProvideShowtimeHandler,
		provider.ProvideSeatMapHandler,
		provider.ProvideTicketHandler,

		// Middleware
		provider.ProvideAuthMiddleware,

		// Server
		provider.ProvideRouter,
		provider.ProvideHTTPServer,

		// Wire the Application struct
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
