// Package cinema implements cinema catalog CRUD, gated by the
// ownership/approval policy in internal/application/ownership.
package cinema

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/application/ownership"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
)

// Service implements cinema catalog CRUD.
type Service struct {
	cinemas repository.CinemaRepository
	logger  *logger.Logger
}

// NewService creates a new cinema service.
func NewService(cinemas repository.CinemaRepository, log *logger.Logger) *Service {
	return &Service{cinemas: cinemas, logger: log}
}

// Create registers a cinema owned by principal, pending admin approval.
func (s *Service) Create(ctx context.Context, principal ownership.Principal, req CreateRequest) (*Response, error) {
	cinema := &entity.Cinema{
		OrganizerID:    principal.UserID,
		Name:           req.Name,
		Location:       req.Location,
		ContactEmail:   req.ContactEmail,
		ApprovalStatus: entity.ApprovalPending,
	}

	if err := s.cinemas.Create(ctx, cinema); err != nil {
		return nil, err
	}
	return toResponse(cinema), nil
}

// GetByID returns a single cinema.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	cinema, err := s.cinemas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(cinema), nil
}

// List returns a page of cinemas.
func (s *Service) List(ctx context.Context, params ListParams) ([]*Response, int64, error) {
	offset := (params.Page - 1) * params.Limit

	cinemas, total, err := s.cinemas.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*Response, 0, len(cinemas))
	for _, c := range cinemas {
		responses = append(responses, toResponse(c))
	}
	return responses, total, nil
}

// Update applies a partial update, restricted to the owning organizer or an admin.
func (s *Service) Update(ctx context.Context, principal ownership.Principal, id uuid.UUID, req UpdateRequest) (*Response, error) {
	cinema, err := s.cinemas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.CheckOwnership(principal, cinema); err != nil {
		return nil, err
	}

	if req.Name != "" {
		cinema.Name = req.Name
	}
	if req.Location != "" {
		cinema.Location = req.Location
	}
	if req.ContactEmail != "" {
		cinema.ContactEmail = req.ContactEmail
	}

	if err := s.cinemas.Update(ctx, cinema); err != nil {
		return nil, err
	}
	return toResponse(cinema), nil
}

// Delete removes a cinema, restricted to the owning organizer or an admin.
func (s *Service) Delete(ctx context.Context, principal ownership.Principal, id uuid.UUID) error {
	cinema, err := s.cinemas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.CheckOwnership(principal, cinema); err != nil {
		return err
	}
	return s.cinemas.Delete(ctx, id)
}

// UpdateApprovalStatus transitions a cinema's approval state. Admin-only,
// regardless of who organizes the cinema.
func (s *Service) UpdateApprovalStatus(ctx context.Context, principal ownership.Principal, id uuid.UUID, status entity.ApprovalStatus) error {
	if err := ownership.CheckAdmin(principal); err != nil {
		return err
	}
	return s.cinemas.UpdateApprovalStatus(ctx, id, status)
}

func toResponse(c *entity.Cinema) *Response {
	return &Response{
		ID:             c.ID,
		OrganizerID:    c.OrganizerID,
		Name:           c.Name,
		Location:       c.Location,
		ContactEmail:   c.ContactEmail,
		ApprovalStatus: c.ApprovalStatus,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
