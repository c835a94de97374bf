package postgres

import (
	"context"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type outboxRepository struct {
	db *Database
}

// NewOutboxRepository creates a new outbox repository.
func NewOutboxRepository(db *Database) repository.OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) Insert(ctx context.Context, msg *entity.OutboxMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to insert outbox message")
	}
	return nil
}

// ClaimBatch locks up to limit eligible rows with FOR UPDATE SKIP LOCKED
// so that multiple dispatcher instances can poll the same table without
// stepping on each other, then stamps processingAtUtc inside the same
// transaction before releasing the lock.
func (r *outboxRepository) ClaimBatch(ctx context.Context, limit int, maxRetries int) ([]*entity.OutboxMessage, error) {
	var claimed []*entity.OutboxMessage

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []*entity.OutboxMessage

		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("processed_at_utc IS NULL AND processing_at_utc IS NULL AND retry_count < ?", maxRetries).
			Order("created_at_utc").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}

		now := time.Now().UTC()
		if err := tx.Model(&entity.OutboxMessage{}).
			Where("id IN ?", ids).
			Update("processing_at_utc", now).Error; err != nil {
			return err
		}

		for _, row := range rows {
			row.ProcessingAtUtc = &now
		}
		claimed = rows
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to claim outbox batch")
	}

	return claimed, nil
}

func (r *outboxRepository) ResetStuck(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.OutboxMessage{}).
		Where("processed_at_utc IS NULL AND processing_at_utc IS NOT NULL AND processing_at_utc < ?", olderThan).
		Update("processing_at_utc", nil)

	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to reset stuck outbox rows")
	}
	return result.RowsAffected, nil
}

func (r *outboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&entity.OutboxMessage{}).
		Where("id = ?", id).
		Update("processed_at_utc", now)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to mark outbox message processed")
	}
	return nil
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMessage string) error {
	result := r.db.WithContext(ctx).Model(&entity.OutboxMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"retry_count":       gorm.Expr("retry_count + 1"),
			"error_message":     errMessage,
			"processing_at_utc": nil,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to mark outbox message failed")
	}
	return nil
}
