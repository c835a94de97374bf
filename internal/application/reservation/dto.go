package reservation

import (
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// ReserveInput is the Reserve operation's input.
type ReserveInput struct {
	ShowtimeID uuid.UUID
	Seats      []entity.Coord
	UserID     string
	UserEmail  string
}

// ReserveOutput is returned on a successful Reserve call.
type ReserveOutput struct {
	TicketID         uuid.UUID
	BookingReference string
	TotalAmount      entity.Money
	Status           entity.TicketStatus
	CreatedAtUtc     time.Time
}

// TicketView is the denormalized shape returned by ListOwnTickets.
type TicketView struct {
	TicketID         uuid.UUID
	BookingReference string
	Status           entity.TicketStatus
	TotalAmount      entity.Money
	ReservedSeats    entity.Coords
	CreatedAtUtc     time.Time
	PaidAtUtc        *time.Time
	MovieTitle       string
	AuditoriumName   string
	StartTimeUtc     time.Time
}
