package repository

import (
	"context"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// ShowtimeFilter narrows a showtime listing query.
type ShowtimeFilter struct {
	MovieID      *uuid.UUID
	AuditoriumID *uuid.UUID
}

// ShowtimeRepository defines the interface for showtime data access.
type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error

	// GetByID retrieves a showtime by ID only.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)

	// GetByIDWithAuditorium retrieves a showtime together with its
	// auditorium (and the auditorium's layout), the one query the
	// reservation path needs to both verify and price a request.
	GetByIDWithAuditorium(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)

	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ShowtimeFilter, offset, limit int) ([]*entity.Showtime, int64, error)

	// UpdateDetails persists schedule/price fields only (startTimeUtc,
	// basePrice); it never touches seatAvailabilityState or versionToken,
	// so it carries none of UpdateWithVersion's concurrency contract.
	UpdateDetails(ctx context.Context, showtime *entity.Showtime) error

	// UpdateWithVersion performs an optimistic compare-and-swap: it
	// persists the showtime's seat-availability buffer under the
	// expectedVersion it was loaded with, advancing versionToken by one.
	// It returns ErrVersionConflict when no row matched, without reporting
	// a lower-level storage error; callers map that to Conflict(Concurrency).
	UpdateWithVersion(ctx context.Context, id uuid.UUID, buffer []byte, expectedVersion int64) (newVersion int64, err error)
}

// ErrVersionConflict is returned by UpdateWithVersion when the row's
// version token no longer matches expectedVersion.
var ErrVersionConflict = &versionConflictError{}

type versionConflictError struct{}

func (*versionConflictError) Error() string { return "showtime version token conflict" }

// ExpiredPendingTicket is the join row the expiry worker sweeps: enough
// of the ticket, showtime, and auditorium to release reserved seats.
type ExpiredPendingTicket struct {
	TicketID         uuid.UUID
	ShowtimeID       uuid.UUID
	ReservedSeats    entity.Coords
	AuditoriumMaxRow int
	AuditoriumMaxCol int
}

// TicketExpiryRepository is the narrow read this worker needs; declared
// alongside ShowtimeRepository because it joins Ticket+Showtime+Auditorium.
type TicketExpiryRepository interface {
	FindOverduePending(ctx context.Context, olderThan time.Time) ([]ExpiredPendingTicket, error)
}
