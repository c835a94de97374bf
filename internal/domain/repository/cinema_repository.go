package repository

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// CinemaRepository defines the interface for cinema data access.
type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*entity.Cinema, int64, error)

	// UpdateApprovalStatus is restricted to the admin role at the
	// application layer; the repository performs the raw column update.
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error
}
