package provider

import (
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/handler"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
	"github.com/Naveen2070/Hive-Movie/internal/router"
	httpserver "github.com/Naveen2070/Hive-Movie/internal/server"

	"github.com/gin-gonic/gin"
)

// ProvideRouter creates and returns a configured router
func ProvideRouter(
	cfg *config.Config,
	log *logger.Logger,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	movieHandler *handler.MovieHandler,
	cinemaHandler *handler.CinemaHandler,
	auditoriumHandler *handler.AuditoriumHandler,
	showtimeHandler *handler.ShowtimeHandler,
	seatMapHandler *handler.SeatMapHandler,
	ticketHandler *handler.TicketHandler,
) *gin.Engine {
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
	return appRouter.Setup()
}

// ProvideHTTPServer creates and returns an HTTP server
func ProvideHTTPServer(
	cfg *config.Config,
	engine *gin.Engine,
	log *logger.Logger,
) *httpserver.Server {
	return httpserver.NewServer(cfg.Server, engine, log)
}
