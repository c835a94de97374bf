package repository

import (
	"context"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// MovieFilter narrows a movie listing query.
type MovieFilter struct {
	Search string
}

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter MovieFilter, offset, limit int) ([]*entity.Movie, int64, error)
}
