package provider

import (
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
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"
)

// ProvideAuthHandler creates and returns an auth handler
func ProvideAuthHandler(
	authService *auth.Service,
	validator *validator.Validator,
) *handler.AuthHandler {
	return handler.NewAuthHandler(authService, validator)
}

// ProvideHealthHandler creates and returns a health handler
func ProvideHealthHandler(
	cfg *config.Config,
	db *postgres.Database,
	publisher *broker.Publisher,
) *handler.HealthHandler {
	return handler.NewHealthHandler(cfg, db, publisher)
}

// ProvideMovieHandler creates and returns a movie handler
func ProvideMovieHandler(
	movieService *movie.Service,
	validator *validator.Validator,
) *handler.MovieHandler {
	return handler.NewMovieHandler(movieService, validator)
}

// ProvideCinemaHandler creates and returns a cinema handler
func ProvideCinemaHandler(
	cinemaService *cinema.Service,
	validator *validator.Validator,
) *handler.CinemaHandler {
	return handler.NewCinemaHandler(cinemaService, validator)
}

// ProvideAuditoriumHandler creates and returns an auditorium handler
func ProvideAuditoriumHandler(
	auditoriumService *auditorium.Service,
	validator *validator.Validator,
) *handler.AuditoriumHandler {
	return handler.NewAuditoriumHandler(auditoriumService, validator)
}

// ProvideShowtimeHandler creates and returns a showtime handler
func ProvideShowtimeHandler(
	showtimeService *showtime.Service,
	validator *validator.Validator,
) *handler.ShowtimeHandler {
	return handler.NewShowtimeHandler(showtimeService, validator)
}

// ProvideSeatMapHandler creates and returns a seat-map handler
func ProvideSeatMapHandler(
	seatMapService *seatmap.Service,
) *handler.SeatMapHandler {
	return handler.NewSeatMapHandler(seatMapService)
}

// ProvideTicketHandler creates and returns a ticket handler
func ProvideTicketHandler(
	reservationService *reservation.Service,
	validator *validator.Validator,
) *handler.TicketHandler {
	return handler.NewTicketHandler(reservationService, validator)
}
