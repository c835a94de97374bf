package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// fakeOutbox is an in-memory repository.OutboxRepository good enough to
// exercise claim/mark semantics without a real database.
type fakeOutbox struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*entity.OutboxMessage
	resetN   int64
}

func newFakeOutbox(rows ...*entity.OutboxMessage) *fakeOutbox {
	f := &fakeOutbox{rows: make(map[uuid.UUID]*entity.OutboxMessage)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeOutbox) Insert(ctx context.Context, msg *entity.OutboxMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[msg.ID] = msg
	return nil
}

func (f *fakeOutbox) ClaimBatch(ctx context.Context, limit int, maxRetries int) ([]*entity.OutboxMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var claimed []*entity.OutboxMessage
	now := time.Now().UTC()
	for _, row := range f.rows {
		if row.ProcessedAtUtc == nil && row.ProcessingAtUtc == nil && row.RetryCount < maxRetries {
			row.ProcessingAtUtc = &now
			claimed = append(claimed, row)
		}
		if len(claimed) >= limit {
			break
		}
	}
	return claimed, nil
}

func (f *fakeOutbox) ResetStuck(ctx context.Context, olderThan time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetN, nil
}

func (f *fakeOutbox) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return errors.New("not found")
	}
	now := time.Now().UTC()
	row.ProcessedAtUtc = &now
	return nil
}

func (f *fakeOutbox) MarkFailed(ctx context.Context, id uuid.UUID, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return errors.New("not found")
	}
	row.RetryCount++
	row.ErrorMessage = &msg
	row.ProcessingAtUtc = nil
	return nil
}

func (f *fakeOutbox) get(id uuid.UUID) *entity.OutboxMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id]
}

// fakePublisher records every call and optionally fails by recipient.
type fakePublisher struct {
	mu      sync.Mutex
	failFor map[string]bool
	calls   []uuid.UUID
}

func (p *fakePublisher) PublishEmailNotification(ctx context.Context, messageID uuid.UUID, payload json.RawMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, messageID)

	var decoded entity.EmailNotificationPayload
	_ = json.Unmarshal(payload, &decoded)
	if p.failFor[decoded.RecipientEmail] {
		return errors.New("broker unreachable")
	}
	return nil
}

func newEmailRow(email string, retryCount int) *entity.OutboxMessage {
	payload, _ := json.Marshal(entity.EmailNotificationPayload{
		RecipientEmail: email,
		Subject:        "Your booking is confirmed",
		TemplateCode:   "booking-confirmed",
	})
	return &entity.OutboxMessage{
		ID:           uuid.New(),
		EventType:    entity.EventEmailNotification,
		Payload:      entity.JSONPayload(payload),
		CreatedAtUtc: time.Now().UTC(),
		RetryCount:   retryCount,
	}
}

func newTestDispatcher(pub *fakePublisher) *Dispatcher {
	return NewDispatcher(newFakeOutbox(), pub, testLogger(), 0, 0, 0, 0)
}

func TestSweepPublishesClaimedMessages(t *testing.T) {
	row := newEmailRow("user@example.com", 0)
	pub := &fakePublisher{failFor: map[string]bool{}}
	d := NewDispatcher(newFakeOutbox(row), pub, testLogger(), 0, 0, 0, 0)
	d.pool.Start()
	defer d.pool.Stop(time.Second)

	d.sweep(context.Background())

	fo := d.outbox.(*fakeOutbox)
	if got := fo.get(row.ID); got.ProcessedAtUtc == nil {
		t.Fatalf("expected row to be marked processed")
	}
}

func TestSweepRetriesOnPublishFailure(t *testing.T) {
	row := newEmailRow("fails@example.com", 0)
	pub := &fakePublisher{failFor: map[string]bool{"fails@example.com": true}}
	d := NewDispatcher(newFakeOutbox(row), pub, testLogger(), 0, 0, 0, 0)
	d.pool.Start()
	defer d.pool.Stop(time.Second)

	d.sweep(context.Background())

	fo := d.outbox.(*fakeOutbox)
	got := fo.get(row.ID)
	if got.ProcessedAtUtc != nil {
		t.Fatalf("expected row to remain unprocessed after a single failure")
	}
	if got.RetryCount != 1 {
		t.Fatalf("expected retry_count 1, got %d", got.RetryCount)
	}
}

func TestSweepPoisonsMessageAfterMaxRetries(t *testing.T) {
	row := newEmailRow("fails@example.com", defaultMaxRetries-1)
	pub := &fakePublisher{failFor: map[string]bool{"fails@example.com": true}}
	d := NewDispatcher(newFakeOutbox(row), pub, testLogger(), 0, 0, 0, 0)
	d.pool.Start()
	defer d.pool.Stop(time.Second)

	d.sweep(context.Background())

	fo := d.outbox.(*fakeOutbox)
	got := fo.get(row.ID)
	if got.ProcessedAtUtc == nil {
		t.Fatalf("expected poisoned row to be marked processed so it stops being claimed")
	}
	if !got.IsPoisoned(defaultMaxRetries) {
		t.Fatalf("expected row to report as poisoned")
	}
}

func TestClaimBatchExcludesRowsAlreadyProcessing(t *testing.T) {
	row := newEmailRow("user@example.com", 0)
	fo := newFakeOutbox(row)

	first, err := fo.ClaimBatch(context.Background(), 10, defaultMaxRetries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected first claim to pick up the row, got %d", len(first))
	}

	second, err := fo.ClaimBatch(context.Background(), 10, defaultMaxRetries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected a row with processing_at_utc set to be excluded from a concurrent claim, got %d", len(second))
	}
}

func TestSweepWithEmptyBatchIsNoop(t *testing.T) {
	pub := &fakePublisher{failFor: map[string]bool{}}
	d := newTestDispatcher(pub)
	d.pool.Start()
	defer d.pool.Stop(time.Second)

	d.sweep(context.Background())

	if len(pub.calls) != 0 {
		t.Fatalf("expected no publish calls for an empty batch")
	}
}
