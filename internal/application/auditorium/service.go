// Package auditorium implements auditorium CRUD, gated by the ownership
// policy against the auditorium's parent cinema. Dimensions and layout
// are fixed at creation: a live Showtime's seat buffer is sized and
// priced against them, so changing either after the fact would corrupt
// in-flight reservations.
package auditorium

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/application/ownership"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
)

// Service implements auditorium CRUD.
type Service struct {
	auditoriums repository.AuditoriumRepository
	cinemas     repository.CinemaRepository
	logger      *logger.Logger
}

// NewService creates a new auditorium service.
func NewService(auditoriums repository.AuditoriumRepository, cinemas repository.CinemaRepository, log *logger.Logger) *Service {
	return &Service{auditoriums: auditoriums, cinemas: cinemas, logger: log}
}

// Create adds an auditorium to a cinema, restricted to the cinema's
// owning organizer or an admin.
func (s *Service) Create(ctx context.Context, principal ownership.Principal, req CreateRequest) (*Response, error) {
	cinema, err := s.cinemas.GetByID(ctx, req.CinemaID)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckOwnership(principal, cinema); err != nil {
		return nil, err
	}

	layout, err := toLayout(req.Layout)
	if err != nil {
		return nil, err
	}

	auditorium := &entity.Auditorium{
		CinemaID:   req.CinemaID,
		Name:       req.Name,
		MaxRows:    req.MaxRows,
		MaxColumns: req.MaxColumns,
		Layout:     layout,
	}

	if err := auditorium.ValidateLayout(); err != nil {
		return nil, apperrors.ErrValidation(err.Error())
	}
	if _, ok := layout.SurchargeIndex(); !ok {
		return nil, apperrors.ErrValidation("a seat may not appear in more than one pricing tier")
	}

	if err := s.auditoriums.Create(ctx, auditorium); err != nil {
		return nil, err
	}
	return toResponse(auditorium), nil
}

// GetByID returns a single auditorium.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	auditorium, err := s.auditoriums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(auditorium), nil
}

// List returns a page of auditoriums.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*Response, int64, error) {
	auditoriums, total, err := s.auditoriums.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*Response, 0, len(auditoriums))
	for _, a := range auditoriums {
		responses = append(responses, toResponse(a))
	}
	return responses, total, nil
}

// ListByCinema returns every auditorium owned by one cinema.
func (s *Service) ListByCinema(ctx context.Context, cinemaID uuid.UUID) ([]*Response, error) {
	auditoriums, err := s.auditoriums.ListByCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(auditoriums))
	for _, a := range auditoriums {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

// Update renames an auditorium, restricted to the parent cinema's owning
// organizer or an admin.
func (s *Service) Update(ctx context.Context, principal ownership.Principal, id uuid.UUID, req UpdateRequest) (*Response, error) {
	auditorium, err := s.auditoriums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, principal, auditorium.CinemaID); err != nil {
		return nil, err
	}

	auditorium.Name = req.Name
	if err := s.auditoriums.Update(ctx, auditorium); err != nil {
		return nil, err
	}
	return toResponse(auditorium), nil
}

// Delete removes an auditorium, restricted to the parent cinema's
// owning organizer or an admin.
func (s *Service) Delete(ctx context.Context, principal ownership.Principal, id uuid.UUID) error {
	auditorium, err := s.auditoriums.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(ctx, principal, auditorium.CinemaID); err != nil {
		return err
	}
	return s.auditoriums.Delete(ctx, id)
}

func (s *Service) checkOwnership(ctx context.Context, principal ownership.Principal, cinemaID uuid.UUID) error {
	cinema, err := s.cinemas.GetByID(ctx, cinemaID)
	if err != nil {
		return err
	}
	return ownership.CheckOwnership(principal, cinema)
}

func toLayout(req LayoutRequest) (entity.Layout, error) {
	tiers := make([]entity.Tier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		surcharge, err := entity.NewMoney(t.PriceSurcharge)
		if err != nil {
			return entity.Layout{}, apperrors.ErrValidation("invalid tier surcharge: " + err.Error())
		}
		tiers = append(tiers, entity.Tier{
			TierName:       t.TierName,
			PriceSurcharge: surcharge,
			Seats:          t.Seats,
		})
	}

	return entity.Layout{
		Disabled:   req.Disabled,
		Wheelchair: req.Wheelchair,
		Tiers:      tiers,
	}, nil
}

func toResponse(a *entity.Auditorium) *Response {
	return &Response{
		ID:         a.ID,
		CinemaID:   a.CinemaID,
		Name:       a.Name,
		MaxRows:    a.MaxRows,
		MaxColumns: a.MaxColumns,
		Layout:     a.Layout,
		CreatedAt:  a.CreatedAt,
	}
}
