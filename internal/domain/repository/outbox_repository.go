package repository

import (
	"context"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/google/uuid"
)

// OutboxRepository defines the interface for transactional outbox access.
// Insert commits atomically with whatever else runs on the same
// repository instance when obtained through UnitOfWork.WithinTx.
type OutboxRepository interface {
	Insert(ctx context.Context, msg *entity.OutboxMessage) error

	// ClaimBatch selects up to limit unprocessed, non-poisoned rows for
	// exclusive handling by this dispatcher instance using
	// SELECT ... FOR UPDATE SKIP LOCKED, stamps processingAtUtc, and
	// returns them already marked in-flight.
	ClaimBatch(ctx context.Context, limit int, maxRetries int) ([]*entity.OutboxMessage, error)

	// ResetStuck reclaims rows whose processingAtUtc is older than
	// olderThan and still unprocessed, so a dispatcher that crashed
	// mid-batch doesn't strand them forever.
	ResetStuck(ctx context.Context, olderThan time.Time) (int64, error)

	MarkProcessed(ctx context.Context, id uuid.UUID) error

	// MarkFailed increments retryCount and records errMessage. The
	// caller decides poison status from the row's retry count against its
	// retry budget; this just persists the attempt.
	MarkFailed(ctx context.Context, id uuid.UUID, errMessage string) error
}
