package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie is a catalog entry a showtime screens.
type Movie struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int            `gorm:"not null" json:"durationMinutes"`
	ReleaseDate     time.Time      `gorm:"type:date;not null" json:"releaseDate"`
	PosterURL       *string        `json:"posterUrl,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	CreatedBy       string         `json:"-"`
	UpdatedBy       string         `json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}
