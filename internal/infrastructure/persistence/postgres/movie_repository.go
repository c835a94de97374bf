package postgres

import (
	"context"
	"errors"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *Database
}

// NewMovieRepository creates a new movie repository.
func NewMovieRepository(db *Database) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create movie")
	}
	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "movie not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get movie")
	}
	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	if err := r.db.WithContext(ctx).Save(movie).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to update movie")
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Movie{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete movie")
	}
	return nil
}

func (r *movieRepository) List(ctx context.Context, filter repository.MovieFilter, offset, limit int) ([]*entity.Movie, int64, error) {
	var movies []*entity.Movie
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.Movie{})

	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		db = db.Where("title ILIKE ?", searchTerm)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count movies")
	}

	if err := db.Offset(offset).Limit(limit).Order("release_date DESC").Find(&movies).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list movies")
	}

	return movies, total, nil
}
