package auditorium

import (
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"

	"github.com/google/uuid"
)

// TierRequest describes one named pricing tier's seats and surcharge.
type TierRequest struct {
	TierName       string         `json:"tierName" validate:"required"`
	PriceSurcharge string         `json:"priceSurcharge" validate:"required"`
	Seats          []entity.Coord `json:"seats"`
}

// LayoutRequest is the wire shape of an auditorium's layout document.
type LayoutRequest struct {
	Disabled   []entity.Coord `json:"disabled"`
	Wheelchair []entity.Coord `json:"wheelchair"`
	Tiers      []TierRequest  `json:"tiers"`
}

// CreateRequest is the payload for POST /api/auditoriums.
type CreateRequest struct {
	CinemaID   uuid.UUID     `json:"cinemaId" validate:"required"`
	Name       string        `json:"name" validate:"required"`
	MaxRows    int           `json:"maxRows" validate:"required,min=1"`
	MaxColumns int           `json:"maxColumns" validate:"required,min=1"`
	Layout     LayoutRequest `json:"layout"`
}

// UpdateRequest is the payload for PUT /api/auditoriums/{id}. The seat
// grid dimensions and layout are immutable after creation because a
// live Showtime's buffer is sized against them; only the name may change.
type UpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

// Response is the public view of an Auditorium.
type Response struct {
	ID         uuid.UUID     `json:"id"`
	CinemaID   uuid.UUID     `json:"cinemaId"`
	Name       string        `json:"name"`
	MaxRows    int           `json:"maxRows"`
	MaxColumns int           `json:"maxColumns"`
	Layout     entity.Layout `json:"layout"`
	CreatedAt  time.Time     `json:"createdAt"`
}
