package cinema

import (
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequest is the payload for POST /api/cinemas. organizerId is
// never taken from the body; it is stamped from the authenticated
// principal.
type CreateRequest struct {
	Name         string `json:"name" validate:"required"`
	Location     string `json:"location" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
}

// UpdateRequest is the payload for PUT /api/cinemas/{id}.
type UpdateRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
}

// ListParams paginates GET /api/cinemas.
type ListParams struct {
	Page  int
	Limit int
}

// Response is the public view of a Cinema.
type Response struct {
	ID             uuid.UUID             `json:"id"`
	OrganizerID    string                `json:"organizerId"`
	Name           string                `json:"name"`
	Location       string                `json:"location"`
	ContactEmail   string                `json:"contactEmail"`
	ApprovalStatus entity.ApprovalStatus `json:"approvalStatus"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
