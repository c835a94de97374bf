// Package showtime implements showtime scheduling: creation is gated by
// both ownership of the parent cinema and the cinema's approval status;
// updates and deletes require only ownership, so an organizer can still
// cancel a showtime after its cinema is revoked.
package showtime

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/application/ownership"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
)

// Service implements showtime CRUD.
type Service struct {
	showtimes   repository.ShowtimeRepository
	auditoriums repository.AuditoriumRepository
	logger      *logger.Logger
}

// NewService creates a new showtime service.
func NewService(showtimes repository.ShowtimeRepository, auditoriums repository.AuditoriumRepository, log *logger.Logger) *Service {
	return &Service{showtimes: showtimes, auditoriums: auditoriums, logger: log}
}

// Create schedules a showtime against an approved, owned auditorium.
func (s *Service) Create(ctx context.Context, principal ownership.Principal, req CreateRequest) (*Response, error) {
	auditorium, err := s.auditoriums.GetByID(ctx, req.AuditoriumID)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckOwnership(principal, &auditorium.Cinema); err != nil {
		return nil, err
	}
	if err := ownership.CheckApproved(&auditorium.Cinema); err != nil {
		return nil, err
	}

	basePrice, err := entity.NewMoney(req.BasePrice)
	if err != nil {
		return nil, apperrors.ErrBadRequest("invalid base price: " + err.Error())
	}

	sh := &entity.Showtime{
		MovieID:               req.MovieID,
		AuditoriumID:          req.AuditoriumID,
		StartTimeUtc:          req.StartTimeUtc,
		BasePrice:             basePrice,
		SeatAvailabilityState: engine.NewBuffer(auditorium.MaxRows, auditorium.MaxColumns),
		VersionToken:          0,
	}

	if err := s.showtimes.Create(ctx, sh); err != nil {
		return nil, err
	}
	return toResponse(sh), nil
}

// GetByID returns a single showtime.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	sh, err := s.showtimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(sh), nil
}

// List returns a page of showtimes, optionally filtered by movie or auditorium.
func (s *Service) List(ctx context.Context, filter repository.ShowtimeFilter, offset, limit int) ([]*Response, int64, error) {
	showtimes, total, err := s.showtimes.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*Response, 0, len(showtimes))
	for _, sh := range showtimes {
		responses = append(responses, toResponse(sh))
	}
	return responses, total, nil
}

// Update changes a showtime's schedule/price, restricted to the parent
// cinema's owning organizer or an admin. Approval is not re-checked:
// an organizer may still adjust a showtime after the cinema is revoked.
func (s *Service) Update(ctx context.Context, principal ownership.Principal, id uuid.UUID, req UpdateRequest) (*Response, error) {
	sh, err := s.showtimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, principal, sh.AuditoriumID); err != nil {
		return nil, err
	}

	if !req.StartTimeUtc.IsZero() {
		sh.StartTimeUtc = req.StartTimeUtc
	}
	if req.BasePrice != "" {
		basePrice, err := entity.NewMoney(req.BasePrice)
		if err != nil {
			return nil, apperrors.ErrBadRequest("invalid base price: " + err.Error())
		}
		sh.BasePrice = basePrice
	}

	if err := s.showtimes.UpdateDetails(ctx, sh); err != nil {
		return nil, err
	}
	return toResponse(sh), nil
}

// Delete removes a showtime, restricted to the parent cinema's owning
// organizer or an admin.
func (s *Service) Delete(ctx context.Context, principal ownership.Principal, id uuid.UUID) error {
	sh, err := s.showtimes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(ctx, principal, sh.AuditoriumID); err != nil {
		return err
	}
	return s.showtimes.Delete(ctx, id)
}

func (s *Service) checkOwnership(ctx context.Context, principal ownership.Principal, auditoriumID uuid.UUID) error {
	auditorium, err := s.auditoriums.GetByID(ctx, auditoriumID)
	if err != nil {
		return err
	}
	return ownership.CheckOwnership(principal, &auditorium.Cinema)
}

func toResponse(sh *entity.Showtime) *Response {
	return &Response{
		ID:           sh.ID,
		MovieID:      sh.MovieID,
		AuditoriumID: sh.AuditoriumID,
		StartTimeUtc: sh.StartTimeUtc,
		BasePrice:    sh.BasePrice.String(),
		CreatedAt:    sh.CreatedAt,
	}
}
