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

type ticketRepository struct {
	db *Database
}

// NewTicketRepository creates a new ticket repository.
func NewTicketRepository(db *Database) repository.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create ticket")
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "ticket not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get ticket")
	}
	return &ticket, nil
}

func (r *ticketRepository) GetByBookingReference(ctx context.Context, ref string) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "booking_reference = ?", ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "ticket not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get ticket")
	}
	return &ticket, nil
}

func (r *ticketRepository) ExistsByBookingReference(ctx context.Context, ref string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Ticket{}).Where("booking_reference = ?", ref).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, apperrors.CodeInternal, "failed to check booking reference")
	}
	return count > 0, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	if err := r.db.WithContext(ctx).Save(ticket).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to update ticket")
	}
	return nil
}

func (r *ticketRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*entity.Ticket, int64, error) {
	var tickets []*entity.Ticket
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.Ticket{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count tickets")
	}

	err := r.db.WithContext(ctx).
		Preload("Showtime.Movie").
		Preload("Showtime.Auditorium").
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at_utc DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list tickets")
	}

	return tickets, total, nil
}
