package showtime

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the payload for POST /api/showtimes.
type CreateRequest struct {
	MovieID      uuid.UUID `json:"movieId" validate:"required"`
	AuditoriumID uuid.UUID `json:"auditoriumId" validate:"required"`
	StartTimeUtc time.Time `json:"startTimeUtc" validate:"required"`
	BasePrice    string    `json:"basePrice" validate:"required"`
}

// UpdateRequest is the payload for PUT /api/showtimes/{id}. Neither the
// movie nor the auditorium may be changed once seats may already be
// reserved against the buffer they were sized for.
type UpdateRequest struct {
	StartTimeUtc time.Time `json:"startTimeUtc"`
	BasePrice    string    `json:"basePrice"`
}

// Response is the public view of a Showtime.
type Response struct {
	ID           uuid.UUID `json:"id"`
	MovieID      uuid.UUID `json:"movieId"`
	AuditoriumID uuid.UUID `json:"auditoriumId"`
	StartTimeUtc time.Time `json:"startTimeUtc"`
	BasePrice    string    `json:"basePrice"`
	CreatedAt    time.Time `json:"createdAt"`
}
