package movie

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the payload for POST /api/movies.
type CreateRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=1"`
	ReleaseDate     string  `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	PosterURL       *string `json:"posterUrl"`
}

// UpdateRequest is the payload for PUT /api/movies/{id}. Zero values mean
// "leave unchanged" except where a pointer field makes absence explicit.
type UpdateRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	ReleaseDate     string  `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	PosterURL       *string `json:"posterUrl"`
}

// ListParams narrows and paginates GET /api/movies.
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

// Response is the catalog view of a Movie.
type Response struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	ReleaseDate     string    `json:"releaseDate"`
	PosterURL       *string   `json:"posterUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
