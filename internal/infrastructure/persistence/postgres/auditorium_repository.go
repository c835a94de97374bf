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

type auditoriumRepository struct {
	db *Database
}

// NewAuditoriumRepository creates a new auditorium repository.
func NewAuditoriumRepository(db *Database) repository.AuditoriumRepository {
	return &auditoriumRepository{db: db}
}

func (r *auditoriumRepository) Create(ctx context.Context, auditorium *entity.Auditorium) error {
	if err := r.db.WithContext(ctx).Create(auditorium).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create auditorium")
	}
	return nil
}

func (r *auditoriumRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	var auditorium entity.Auditorium
	err := r.db.WithContext(ctx).Preload("Cinema").First(&auditorium, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "auditorium not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get auditorium")
	}
	return &auditorium, nil
}

func (r *auditoriumRepository) Update(ctx context.Context, auditorium *entity.Auditorium) error {
	if err := r.db.WithContext(ctx).Save(auditorium).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to update auditorium")
	}
	return nil
}

func (r *auditoriumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Auditorium{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete auditorium")
	}
	return nil
}

func (r *auditoriumRepository) List(ctx context.Context, offset, limit int) ([]*entity.Auditorium, int64, error) {
	var auditoriums []*entity.Auditorium
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.Auditorium{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count auditoriums")
	}

	if err := db.Offset(offset).Limit(limit).Order("name").Find(&auditoriums).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list auditoriums")
	}

	return auditoriums, total, nil
}

func (r *auditoriumRepository) ListByCinema(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	var auditoriums []*entity.Auditorium
	if err := r.db.WithContext(ctx).Where("cinema_id = ?", cinemaID).Order("name").Find(&auditoriums).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list auditoriums by cinema")
	}
	return auditoriums, nil
}
