package repository

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// AuditoriumRepository defines the interface for auditorium data access.
type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *entity.Auditorium) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error)
	Update(ctx context.Context, auditorium *entity.Auditorium) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*entity.Auditorium, int64, error)
	ListByCinema(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error)
}
