package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Showtime is a scheduled screening of one movie in one auditorium. Its
// seat-availability buffer and version token are the unit of optimistic
// concurrency the reservation path serializes on.
type Showtime struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MovieID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"movieId"`
	AuditoriumID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"auditoriumId"`
	StartTimeUtc          time.Time      `gorm:"not null" json:"startTimeUtc"`
	BasePrice             Money          `gorm:"type:numeric(12,2);not null" json:"basePrice"`
	SeatAvailabilityState []byte         `gorm:"type:bytea;not null" json:"-"`
	VersionToken          int64          `gorm:"not null;default:0" json:"versionToken"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	CreatedBy             string         `json:"-"`
	UpdatedBy             string         `json:"-"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`

	Movie      Movie      `gorm:"foreignKey:MovieID" json:"-"`
	Auditorium Auditorium `gorm:"foreignKey:AuditoriumID" json:"-"`
}

func (Showtime) TableName() string {
	return "showtimes"
}
