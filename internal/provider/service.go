package provider

import (
	"github.com/Naveen2070/Hive-Movie/internal/app/authinfra"
	"github.com/Naveen2070/Hive-Movie/internal/application/auditorium"
	"github.com/Naveen2070/Hive-Movie/internal/application/auth"
	"github.com/Naveen2070/Hive-Movie/internal/application/cinema"
	"github.com/Naveen2070/Hive-Movie/internal/application/expiry"
	"github.com/Naveen2070/Hive-Movie/internal/application/movie"
	"github.com/Naveen2070/Hive-Movie/internal/application/outbox"
	"github.com/Naveen2070/Hive-Movie/internal/application/reservation"
	"github.com/Naveen2070/Hive-Movie/internal/application/seatmap"
	"github.com/Naveen2070/Hive-Movie/internal/application/showtime"
	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/broker"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
)

// ProvideJWTManager creates and returns a JWT manager
func ProvideJWTManager(cfg *config.Config) *authinfra.JWTManager {
	return authinfra.NewJWTManager(cfg.JWT)
}

// ProvidePasswordManager creates and returns a password manager
func ProvidePasswordManager() *authinfra.PasswordManager {
	return authinfra.NewPasswordManager()
}

// ProvideAuthService creates and returns an auth service
func ProvideAuthService(
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
	resetTokenRepo repository.PasswordResetTokenRepository,
	jwtManager *authinfra.JWTManager,
	passwordMgr *authinfra.PasswordManager,
	log *logger.Logger,
	cfg *config.Config,
) *auth.Service {
	return auth.NewService(
		userRepo,
		refreshRepo,
		resetTokenRepo,
		jwtManager,
		passwordMgr,
		log,
		cfg.Email.FrontendURL,
	)
}

// ProvideMovieService creates and returns a movie service
func ProvideMovieService(
	movieRepo repository.MovieRepository,
	log *logger.Logger,
) *movie.Service {
	return movie.NewService(movieRepo, log)
}

// ProvideCinemaService creates and returns a cinema service
func ProvideCinemaService(
	cinemaRepo repository.CinemaRepository,
	log *logger.Logger,
) *cinema.Service {
	return cinema.NewService(cinemaRepo, log)
}

// ProvideAuditoriumService creates and returns an auditorium service
func ProvideAuditoriumService(
	auditoriumRepo repository.AuditoriumRepository,
	cinemaRepo repository.CinemaRepository,
	log *logger.Logger,
) *auditorium.Service {
	return auditorium.NewService(auditoriumRepo, cinemaRepo, log)
}

// ProvideShowtimeService creates and returns a showtime service
func ProvideShowtimeService(
	showtimeRepo repository.ShowtimeRepository,
	auditoriumRepo repository.AuditoriumRepository,
	log *logger.Logger,
) *showtime.Service {
	return showtime.NewService(showtimeRepo, auditoriumRepo, log)
}

// ProvideReservationService creates and returns the reservation service
// backing Reserve/ConfirmPayment/ListOwnTickets.
func ProvideReservationService(
	showtimeRepo repository.ShowtimeRepository,
	ticketRepo repository.TicketRepository,
	uow repository.UnitOfWork,
	seatMapCache *cache.TTLCache,
	log *logger.Logger,
) *reservation.Service {
	return reservation.NewService(showtimeRepo, ticketRepo, uow, seatMapCache, log)
}

// ProvideSeatMapService creates and returns the read-only seat-map
// projection service.
func ProvideSeatMapService(
	showtimeRepo repository.ShowtimeRepository,
	seatMapCache *cache.TTLCache,
) *seatmap.Service {
	return seatmap.NewService(showtimeRepo, seatMapCache)
}

// ProvideExpiryWorker creates and returns the background worker that
// sweeps overdue pending tickets.
func ProvideExpiryWorker(
	showtimeRepo repository.ShowtimeRepository,
	ticketRepo repository.TicketRepository,
	uow repository.UnitOfWork,
	seatMapCache *cache.TTLCache,
	log *logger.Logger,
	cfg *config.Config,
) *expiry.Worker {
	return expiry.NewWorker(showtimeRepo, ticketRepo, uow, seatMapCache, log, cfg.Expiry.TickInterval, cfg.Reservation.HoldWindow)
}

// ProvideOutboxDispatcher creates and returns the background dispatcher
// that drains the transactional outbox onto the broker.
func ProvideOutboxDispatcher(
	outboxRepo repository.OutboxRepository,
	publisher *broker.Publisher,
	log *logger.Logger,
	cfg *config.Config,
) *outbox.Dispatcher {
	return outbox.NewDispatcher(
		outboxRepo,
		publisher,
		log,
		cfg.Outbox.TickInterval,
		cfg.Outbox.StuckTimeout,
		cfg.Outbox.BatchSize,
		cfg.Outbox.MaxRetries,
	)
}
