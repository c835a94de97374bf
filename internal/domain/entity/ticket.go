package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketStatus is the Pending/Confirmed/Expired/Cancelled lifecycle of a
// reservation.
type TicketStatus string

const (
	TicketPending   TicketStatus = "Pending"
	TicketConfirmed TicketStatus = "Confirmed"
	TicketExpired   TicketStatus = "Expired"
	TicketCancelled TicketStatus = "Cancelled"
)

// Ticket is a non-owning reference to a Showtime plus the externally
// defined userId of the buyer.
type Ticket struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           string         `gorm:"not null;index" json:"userId"`
	UserEmail        string         `json:"-"`
	ShowtimeID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"showtimeId"`
	BookingReference string         `gorm:"uniqueIndex;not null" json:"bookingReference"`
	ReservedSeats    Coords         `gorm:"type:jsonb;not null" json:"reservedSeats"`
	TotalAmount      Money          `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	Status           TicketStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAtUtc     time.Time      `json:"createdAtUtc"`
	PaidAtUtc        *time.Time     `json:"paidAtUtc,omitempty"`
	UpdatedAt        time.Time      `json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Showtime Showtime `gorm:"foreignKey:ShowtimeID" json:"-"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// CanConfirm reports whether this ticket is still eligible to transition
// Pending -> Confirmed.
func (t *Ticket) CanConfirm() bool {
	return t.Status == TicketPending
}
