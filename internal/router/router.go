package router

import (
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/handler"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	cfg              *config.Config
	logger           *logger.Logger
	authMiddleware   *middleware.AuthMiddleware
	authHandler      *handler.AuthHandler
	healthHandler    *handler.HealthHandler
	movieHandler     *handler.MovieHandler
	cinemaHandler    *handler.CinemaHandler
	auditoriumHandler *handler.AuditoriumHandler
	showtimeHandler  *handler.ShowtimeHandler
	seatMapHandler   *handler.SeatMapHandler
	ticketHandler    *handler.TicketHandler
}

// NewRouter creates a new router
func NewRouter(
	cfg *config.Config,
	logger *logger.Logger,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	movieHandler *handler.MovieHandler,
	cinemaHandler *handler.CinemaHandler,
	auditoriumHandler *handler.AuditoriumHandler,
	showtimeHandler *handler.ShowtimeHandler,
	seatMapHandler *handler.SeatMapHandler,
	ticketHandler *handler.TicketHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		authMiddleware:    authMiddleware,
		authHandler:       authHandler,
		healthHandler:     healthHandler,
		movieHandler:      movieHandler,
		cinemaHandler:     cinemaHandler,
		auditoriumHandler: auditoriumHandler,
		showtimeHandler:   showtimeHandler,
		seatMapHandler:    seatMapHandler,
		ticketHandler:     ticketHandler,
	}
}

// Setup configures the Gin router with all routes and middleware.
//
// Rate limiting is intentionally not wired here: the reservation core
// relies on the seat-state engine's compare-and-swap for correctness
// under load, not on throttling per-caller request volume.
func (r *Router) Setup() *gin.Engine {
	if r.cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(r.logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(r.logger))
	router.Use(middleware.CORSMiddleware(r.cfg.CORS))
	router.Use(middleware.SecureHeadersMiddleware())

	router.GET("/health", r.healthHandler.Health)
	router.GET("/health/ready", r.healthHandler.HealthDetailed)
	router.GET("/health/live", r.healthHandler.Live)
	router.GET("/info", r.healthHandler.Info)

	authn := r.authMiddleware.Authenticate()
	organizerOrAdmin := r.authMiddleware.RequireRole(string(entity.RoleOrganizer), string(entity.RoleAdmin))
	adminOnly := r.authMiddleware.RequireRole(string(entity.RoleAdmin))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.RefreshToken)
			auth.POST("/forgot-password", r.authHandler.ForgotPassword)
			auth.POST("/reset-password", r.authHandler.ResetPassword)

			auth.POST("/logout", authn, r.authHandler.Logout)
			auth.POST("/change-password", authn, r.authHandler.ChangePassword)
			auth.GET("/me", authn, r.authHandler.GetCurrentUser)
			auth.PATCH("/me", authn, r.authHandler.UpdateProfile)
		}

		movies := api.Group("/movies")
		{
			movies.GET("", r.movieHandler.List)
			movies.GET("/:id", r.movieHandler.GetByID)
			movies.POST("", authn, organizerOrAdmin, r.movieHandler.Create)
			movies.PUT("/:id", authn, organizerOrAdmin, r.movieHandler.Update)
			movies.DELETE("/:id", authn, organizerOrAdmin, r.movieHandler.Delete)
		}

		cinemas := api.Group("/cinemas")
		{
			cinemas.GET("", r.cinemaHandler.List)
			cinemas.GET("/:id", r.cinemaHandler.GetByID)
			cinemas.POST("", authn, organizerOrAdmin, r.cinemaHandler.Create)
			cinemas.PATCH("/:id/status", authn, adminOnly, r.cinemaHandler.UpdateApprovalStatus)
			// Ownership (organizer owns the cinema, or admin) is enforced
			// in the application layer, which has the cinema record.
			cinemas.PUT("/:id", authn, r.cinemaHandler.Update)
			cinemas.DELETE("/:id", authn, r.cinemaHandler.Delete)
		}

		auditoriums := api.Group("/auditoriums")
		{
			auditoriums.GET("", r.auditoriumHandler.List)
			auditoriums.GET("/:id", r.auditoriumHandler.GetByID)
			auditoriums.GET("/cinema/:cinemaId", r.auditoriumHandler.ListByCinema)
			auditoriums.POST("", authn, r.auditoriumHandler.Create)
			auditoriums.PUT("/:id", authn, r.auditoriumHandler.Update)
			auditoriums.DELETE("/:id", authn, r.auditoriumHandler.Delete)
		}

		showtimes := api.Group("/showtimes")
		{
			showtimes.GET("", r.showtimeHandler.List)
			showtimes.GET("/:id", r.showtimeHandler.GetByID)
			showtimes.GET("/:id/seatmap", r.seatMapHandler.Get)
			showtimes.POST("", authn, r.showtimeHandler.Create)
			showtimes.PUT("/:id", authn, r.showtimeHandler.Update)
			showtimes.DELETE("/:id", authn, r.showtimeHandler.Delete)
		}

		tickets := api.Group("/tickets")
		{
			tickets.POST("/reserve", authn, r.ticketHandler.Reserve)
			tickets.GET("/my-bookings", authn, r.ticketHandler.MyBookings)
			tickets.POST("/payment/success", r.ticketHandler.PaymentSuccess)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
	})

	return router
}
