package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier is a named set of coordinates sharing one non-negative surcharge
// added to a showtime's base price.
type Tier struct {
	TierName      string  `json:"tierName"`
	PriceSurcharge Money  `json:"priceSurcharge"`
	Seats         []Coord `json:"seats"`
}

// Layout is the embedded document describing an auditorium's disabled
// seats, wheelchair spots, and pricing tiers.
type Layout struct {
	Disabled   []Coord `json:"disabled"`
	Wheelchair []Coord `json:"wheelchair"`
	Tiers      []Tier  `json:"tiers"`
}

// Scan implements sql.Scanner so Layout round-trips through a jsonb column.
func (l *Layout) Scan(value interface{}) error {
	if value == nil {
		*l = Layout{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed for Layout")
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer.
func (l Layout) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// SurchargeIndex builds a (row,col)->surcharge lookup from the layout's
// tiers. A data-model violation (the same coordinate listed in more than
// one tier) is reported via ok=false so callers reject it at write time.
func (l Layout) SurchargeIndex() (index map[Coord]Money, ok bool) {
	index = make(map[Coord]Money)
	for _, tier := range l.Tiers {
		for _, c := range tier.Seats {
			if _, exists := index[c]; exists {
				return nil, false
			}
			index[c] = tier.PriceSurcharge
		}
	}
	return index, true
}

// DisabledSet returns the disabled coordinates as a lookup set.
func (l Layout) DisabledSet() map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(l.Disabled))
	for _, c := range l.Disabled {
		set[c] = struct{}{}
	}
	return set
}

// Auditorium is a physical room with a fixed rectangular seat grid and an
// embedded layout document, exclusively owned by one Cinema.
type Auditorium struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CinemaID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"cinemaId"`
	Name       string         `gorm:"not null" json:"name"`
	MaxRows    int            `gorm:"not null" json:"maxRows"`
	MaxColumns int            `gorm:"not null" json:"maxColumns"`
	Layout     Layout         `gorm:"type:jsonb;not null" json:"layout"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	CreatedBy  string         `json:"-"`
	UpdatedBy  string         `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Cinema Cinema `gorm:"foreignKey:CinemaID" json:"-"`
}

func (Auditorium) TableName() string {
	return "auditoriums"
}

// InBounds reports whether a coordinate is within the auditorium's grid.
func (a *Auditorium) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < a.MaxRows && c.Col >= 0 && c.Col < a.MaxColumns
}

// BufferLen is the required length of a showtime's seat-availability
// buffer for this auditorium.
func (a *Auditorium) BufferLen() int {
	return a.MaxRows * a.MaxColumns
}

// ValidateLayout rejects layouts with out-of-bounds coordinates or
// coordinates shared by more than one tier.
func (a *Auditorium) ValidateLayout() error {
	for _, c := range a.Layout.Disabled {
		if !a.InBounds(c) {
			return errors.New("disabled seat out of bounds")
		}
	}
	for _, c := range a.Layout.Wheelchair {
		if !a.InBounds(c) {
			return errors.New("wheelchair seat out of bounds")
		}
	}
	seen := make(map[Coord]struct{})
	for _, tier := range a.Layout.Tiers {
		if tier.PriceSurcharge.IsNegative() {
			return errors.New("tier surcharge must be non-negative")
		}
		for _, c := range tier.Seats {
			if !a.InBounds(c) {
				return errors.New("tier seat out of bounds")
			}
			if _, dup := seen[c]; dup {
				return errors.New("seat listed in more than one tier")
			}
			seen[c] = struct{}{}
		}
	}
	return nil
}
