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

type cinemaRepository struct {
	db *Database
}

// NewCinemaRepository creates a new cinema repository.
func NewCinemaRepository(db *Database) repository.CinemaRepository {
	return &cinemaRepository{db: db}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	if err := r.db.WithContext(ctx).Create(cinema).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create cinema")
	}
	return nil
}

func (r *cinemaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	var cinema entity.Cinema
	err := r.db.WithContext(ctx).First(&cinema, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "cinema not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get cinema")
	}
	return &cinema, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	if err := r.db.WithContext(ctx).Save(cinema).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to update cinema")
	}
	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Cinema{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete cinema")
	}
	return nil
}

func (r *cinemaRepository) List(ctx context.Context, offset, limit int) ([]*entity.Cinema, int64, error) {
	var cinemas []*entity.Cinema
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.Cinema{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count cinemas")
	}

	if err := db.Offset(offset).Limit(limit).Order("name").Find(&cinemas).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list cinemas")
	}

	return cinemas, total, nil
}

func (r *cinemaRepository) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.Cinema{}).
		Where("id = ?", id).
		Update("approval_status", status)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to update cinema approval status")
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "cinema not found")
	}
	return nil
}
