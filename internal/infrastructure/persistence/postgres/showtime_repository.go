package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type showtimeRepository struct {
	db *Database
}

// NewShowtimeRepository creates a new showtime repository.
func NewShowtimeRepository(db *Database) repository.ShowtimeRepository {
	return &showtimeRepository{db: db}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	if err := r.db.WithContext(ctx).Create(showtime).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create showtime")
	}
	return nil
}

func (r *showtimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	var showtime entity.Showtime
	err := r.db.WithContext(ctx).First(&showtime, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "showtime not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get showtime")
	}
	return &showtime, nil
}

func (r *showtimeRepository) GetByIDWithAuditorium(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	var showtime entity.Showtime
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Auditorium").
		Preload("Auditorium.Cinema").
		First(&showtime, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "showtime not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get showtime")
	}
	return &showtime, nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Showtime{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete showtime")
	}
	return nil
}

func (r *showtimeRepository) List(ctx context.Context, filter repository.ShowtimeFilter, offset, limit int) ([]*entity.Showtime, int64, error) {
	var showtimes []*entity.Showtime
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.Showtime{})

	if filter.MovieID != nil {
		db = db.Where("movie_id = ?", *filter.MovieID)
	}
	if filter.AuditoriumID != nil {
		db = db.Where("auditorium_id = ?", *filter.AuditoriumID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count showtimes")
	}

	if err := db.Offset(offset).Limit(limit).Order("start_time_utc").Find(&showtimes).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list showtimes")
	}

	return showtimes, total, nil
}

// UpdateDetails persists schedule/price fields only and never touches
// seatAvailabilityState or versionToken.
func (r *showtimeRepository) UpdateDetails(ctx context.Context, showtime *entity.Showtime) error {
	err := r.db.WithContext(ctx).Model(&entity.Showtime{}).
		Where("id = ?", showtime.ID).
		Updates(map[string]interface{}{
			"start_time_utc": showtime.StartTimeUtc,
			"base_price":     showtime.BasePrice,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to update showtime details")
	}
	return nil
}

// UpdateWithVersion is the only mutation path for a showtime's seat
// buffer. It never reads-then-writes under a lock: the WHERE clause
// pins the update to the exact version the caller verified its
// reservation against, so a concurrent writer that got there first
// makes this one affect zero rows instead of clobbering it.
func (r *showtimeRepository) UpdateWithVersion(ctx context.Context, id uuid.UUID, buffer []byte, expectedVersion int64) (int64, error) {
	newVersion := expectedVersion + 1

	result := r.db.WithContext(ctx).Model(&entity.Showtime{}).
		Where("id = ? AND version_token = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"seat_availability_state": buffer,
			"version_token":           newVersion,
		})

	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to persist seat state")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrVersionConflict
	}
	return newVersion, nil
}

func (r *showtimeRepository) FindOverduePending(ctx context.Context, olderThan time.Time) ([]repository.ExpiredPendingTicket, error) {
	var rows []repository.ExpiredPendingTicket

	err := r.db.WithContext(ctx).
		Table("tickets").
		Select(
			"tickets.id AS ticket_id",
			"tickets.showtime_id AS showtime_id",
			"tickets.reserved_seats AS reserved_seats",
			"auditoriums.max_rows AS auditorium_max_row",
			"auditoriums.max_columns AS auditorium_max_col",
		).
		Joins("JOIN showtimes ON showtimes.id = tickets.showtime_id").
		Joins("JOIN auditoriums ON auditoriums.id = showtimes.auditorium_id").
		Where("tickets.status = ? AND tickets.created_at_utc < ?", entity.TicketPending, olderThan).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan overdue pending tickets")
	}

	return rows, nil
}
