package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Coord is a (row, column) seat position within an auditorium grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Coords is a slice of Coord persisted as a jsonb column.
type Coords []Coord

func (c *Coords) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed for Coords")
	}
	return json.Unmarshal(bytes, c)
}

func (c Coords) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Money is a fixed-point amount with exactly two decimal places.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money value from a string literal such as "12.50",
// rounding to two decimal places.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

// ZeroMoney returns the additive identity.
func ZeroMoney() Money {
	return Money{decimal.Zero}
}

// Add returns m + other, rounded to two decimal places.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal).Round(2)}
}

// String renders m with exactly two decimal places, e.g. "20.00".
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}

func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.StringFixed(2))
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	m.Decimal = d.Round(2)
	return nil
}

// SeatStatus is the decoded value of one byte in a showtime's seat
// availability buffer.
type SeatStatus byte

const (
	SeatAvailable SeatStatus = 0
	SeatReserved  SeatStatus = 1
	SeatSold      SeatStatus = 2
)

func (s SeatStatus) String() string {
	switch s {
	case SeatAvailable:
		return "Available"
	case SeatReserved:
		return "Reserved"
	case SeatSold:
		return "Sold"
	default:
		return "Corrupt"
	}
}
