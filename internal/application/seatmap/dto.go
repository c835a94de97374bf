package seatmap

import "github.com/google/uuid"

// CellView is one seat's rendered state.
type CellView struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Status string `json:"status"`
}

// View is the denormalized seat-map response for one showtime.
type View struct {
	ShowtimeID     uuid.UUID  `json:"showtimeId"`
	MovieTitle     string     `json:"movieTitle"`
	CinemaName     string     `json:"cinemaName"`
	AuditoriumName string     `json:"auditoriumName"`
	MaxRows        int        `json:"maxRows"`
	MaxColumns     int        `json:"maxColumns"`
	Cells          []CellView `json:"cells"`
}
