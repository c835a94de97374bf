// Package outbox drains the transactional outbox: it claims batches of
// staged events and publishes them to the broker with bounded retries,
// so a reservation's email notification is never lost to a crash between
// the business write and the publish call.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/circuitbreaker"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/worker"

	"github.com/google/uuid"
)

const (
	defaultTickInterval = 10 * time.Second
	defaultStuckAfter   = 5 * time.Minute
	defaultBatchSize    = 50
	defaultMaxRetries   = 5
	poolWorkers         = 8
)

// emailPublisher is the narrow slice of broker.Publisher the dispatcher
// needs, so tests can swap in a fake without dialing a real broker.
type emailPublisher interface {
	PublishEmailNotification(ctx context.Context, messageID uuid.UUID, payload json.RawMessage) error
}

// Dispatcher is the single-instance background loop that publishes
// staged outbox rows. Each claimed batch is fanned out across a bounded
// worker pool so one slow publish doesn't stall the rest of the batch.
type Dispatcher struct {
	outbox       repository.OutboxRepository
	publisher    emailPublisher
	pool         *worker.Pool
	breaker      *circuitbreaker.CircuitBreaker
	logger       *logger.Logger
	tickInterval time.Duration
	stuckAfter   time.Duration
	batchSize    int
	maxRetries   int
}

// NewDispatcher creates a new outbox dispatcher. Zero-valued tuning
// fields fall back to their documented defaults.
func NewDispatcher(
	outbox repository.OutboxRepository,
	publisher emailPublisher,
	log *logger.Logger,
	tickInterval time.Duration,
	stuckAfter time.Duration,
	batchSize int,
	maxRetries int,
) *Dispatcher {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	if stuckAfter <= 0 {
		stuckAfter = defaultStuckAfter
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Dispatcher{
		outbox:       outbox,
		publisher:    publisher,
		pool:         worker.NewPool("outbox-dispatcher", poolWorkers, batchSize, log),
		breaker:      circuitbreaker.New(circuitbreaker.DefaultConfig("outbox-broker"), log),
		logger:       log,
		tickInterval: tickInterval,
		stuckAfter:   stuckAfter,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// Run drives one claim-and-publish sweep per tick until ctx is
// cancelled. The worker pool is started on entry and drained on exit.
func (d *Dispatcher) Run(ctx context.Context) {
	d.pool.Start()
	defer func() {
		if err := d.pool.Stop(d.tickInterval); err != nil {
			d.logger.Warn("outbox dispatcher: pool did not drain cleanly", logger.String("error", err.Error()))
		}
	}()

	ticker := time.NewTicker(d.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sweep(ctx)
		}
	}
}

func (d *Dispatcher) sweep(ctx context.Context) {
	if _, err := d.outbox.ResetStuck(ctx, time.Now().UTC().Add(-d.stuckAfter)); err != nil {
		d.logger.Error("outbox dispatcher: failed to reset stuck rows", logger.String("error", err.Error()))
	}

	batch, err := d.outbox.ClaimBatch(ctx, d.batchSize, d.maxRetries)
	if err != nil {
		d.logger.Error("outbox dispatcher: failed to claim batch", logger.String("error", err.Error()))
		return
	}
	if len(batch) == 0 {
		return
	}

	for _, msg := range batch {
		job := worker.Job{
			ID:      msg.ID.String(),
			Type:    string(msg.EventType),
			Payload: msg,
			Handler: d.handleMessage,
		}
		if err := d.pool.SubmitWait(ctx, job); err != nil {
			d.logger.Error("outbox dispatcher: failed to submit job",
				logger.String("message_id", msg.ID.String()), logger.String("error", err.Error()))
		}
	}

	for i := 0; i < len(batch); i++ {
		select {
		case result := <-d.pool.Results():
			if !result.Success {
				d.logger.Warn("outbox dispatcher: job failed",
					logger.String("message_id", result.JobID), logger.String("error", result.Error.Error()))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, payload interface{}) error {
	msg, ok := payload.(*entity.OutboxMessage)
	if !ok {
		return nil
	}

	switch msg.EventType {
	case entity.EventEmailNotification:
		return d.publishEmail(ctx, msg)
	default:
		return d.outbox.MarkFailed(ctx, msg.ID, "unknown event type: "+string(msg.EventType))
	}
}

func (d *Dispatcher) publishEmail(ctx context.Context, msg *entity.OutboxMessage) error {
	var payload entity.EmailNotificationPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return d.failMessage(ctx, msg, "malformed payload: "+err.Error())
	}

	err := d.breaker.Execute(ctx, func(ctx context.Context) error {
		return d.publisher.PublishEmailNotification(ctx, msg.ID, json.RawMessage(msg.Payload))
	})
	if err != nil {
		return d.failMessage(ctx, msg, err.Error())
	}

	return d.outbox.MarkProcessed(ctx, msg.ID)
}

// failMessage records the failure and, once the row has exhausted its
// retry budget, marks it processed anyway so it stops being claimed
// while remaining visible for audit via its recorded error message.
func (d *Dispatcher) failMessage(ctx context.Context, msg *entity.OutboxMessage, reason string) error {
	if err := d.outbox.MarkFailed(ctx, msg.ID, reason); err != nil {
		d.logger.Error("outbox dispatcher: failed to record failure",
			logger.String("message_id", msg.ID.String()), logger.String("error", err.Error()))
	}

	if msg.RetryCount+1 >= d.maxRetries {
		d.logger.Warn("outbox dispatcher: message poisoned, giving up",
			logger.String("message_id", msg.ID.String()), logger.String("reason", reason))
		if err := d.outbox.MarkProcessed(ctx, msg.ID); err != nil {
			d.logger.Error("outbox dispatcher: failed to poison message",
				logger.String("message_id", msg.ID.String()), logger.String("error", err.Error()))
		}
	}

	return errors.New(reason)
}
