package repository

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// TicketRepository defines the interface for ticket (reservation) data access.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	GetByBookingReference(ctx context.Context, ref string) (*entity.Ticket, error)

	// ExistsByBookingReference backs the generator's collision check;
	// a dedicated exists query avoids loading the whole row.
	ExistsByBookingReference(ctx context.Context, ref string) (bool, error)

	// Update persists status/PaidAtUtc transitions. Ticket rows have no
	// version token of their own; the seat-state CAS on the showtime is
	// what prevents double-allocation, so a plain update is safe here.
	Update(ctx context.Context, ticket *entity.Ticket) error

	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*entity.Ticket, int64, error)
}
