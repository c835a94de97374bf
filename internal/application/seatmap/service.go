// Package seatmap renders a showtime's seat states for UI display, with
// a short-lived cache in front of the read so bursty polling from many
// clients doesn't hammer storage.
package seatmap

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"

	"github.com/google/uuid"
)

// Service implements the seat-map read path.
type Service struct {
	showtimes repository.ShowtimeRepository
	cache     *cache.TTLCache
}

// NewService creates a new seat-map read service.
func NewService(showtimes repository.ShowtimeRepository, c *cache.TTLCache) *Service {
	return &Service{showtimes: showtimes, cache: c}
}

// Get returns the seat map for showtimeID, consulting the cache first.
// The reservation path never calls this; it always re-reads storage
// directly so pricing and availability decisions see the latest state.
func (s *Service) Get(ctx context.Context, showtimeID uuid.UUID) (*View, error) {
	key := cacheKey(showtimeID)

	if cached, ok := s.cache.Get(key); ok {
		view := cached.(View)
		return &view, nil
	}

	showtime, err := s.showtimes.GetByIDWithAuditorium(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	eng := engine.New(showtime.SeatAvailabilityState, showtime.Auditorium.MaxRows, showtime.Auditorium.MaxColumns)

	cells := eng.Cells()
	views := make([]CellView, len(cells))
	for i, c := range cells {
		views[i] = CellView{Row: c.Row, Col: c.Col, Status: c.Status.String()}
	}

	view := View{
		ShowtimeID:     showtime.ID,
		MovieTitle:     showtime.Movie.Title,
		CinemaName:     showtime.Auditorium.Cinema.Name,
		AuditoriumName: showtime.Auditorium.Name,
		MaxRows:        showtime.Auditorium.MaxRows,
		MaxColumns:     showtime.Auditorium.MaxColumns,
		Cells:          views,
	}

	s.cache.Set(key, view)

	return &view, nil
}

func cacheKey(showtimeID uuid.UUID) string {
	return "seatMap:" + showtimeID.String()
}
