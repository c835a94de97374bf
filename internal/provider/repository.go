package provider

import (
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/persistence/postgres"
)

// ProvideUserRepository creates and returns a user repository
func ProvideUserRepository(db *postgres.Database) repository.UserRepository {
	return postgres.NewUserRepository(db)
}

// ProvideRefreshTokenRepository creates and returns a refresh token repository
func ProvideRefreshTokenRepository(db *postgres.Database) repository.RefreshTokenRepository {
	return postgres.NewRefreshTokenRepository(db)
}

// ProvidePasswordResetTokenRepository creates and returns a password reset token repository
func ProvidePasswordResetTokenRepository(db *postgres.Database) repository.PasswordResetTokenRepository {
	return postgres.NewPasswordResetTokenRepository(db)
}

// ProvideMovieRepository creates and returns a movie repository
func ProvideMovieRepository(db *postgres.Database) repository.MovieRepository {
	return postgres.NewMovieRepository(db)
}

// ProvideCinemaRepository creates and returns a cinema repository
func ProvideCinemaRepository(db *postgres.Database) repository.CinemaRepository {
	return postgres.NewCinemaRepository(db)
}

// ProvideAuditoriumRepository creates and returns an auditorium repository
func ProvideAuditoriumRepository(db *postgres.Database) repository.AuditoriumRepository {
	return postgres.NewAuditoriumRepository(db)
}

// ProvideShowtimeRepository creates and returns a showtime repository
func ProvideShowtimeRepository(db *postgres.Database) repository.ShowtimeRepository {
	return postgres.NewShowtimeRepository(db)
}

// ProvideTicketRepository creates and returns a ticket repository
func ProvideTicketRepository(db *postgres.Database) repository.TicketRepository {
	return postgres.NewTicketRepository(db)
}

// ProvideOutboxRepository creates and returns an outbox repository
func ProvideOutboxRepository(db *postgres.Database) repository.OutboxRepository {
	return postgres.NewOutboxRepository(db)
}

// ProvideUnitOfWork creates and returns the cross-repository transaction
// boundary used by the reservation service and the expiry worker.
func ProvideUnitOfWork(db *postgres.Database) repository.UnitOfWork {
	return postgres.NewUnitOfWork(db)
}
