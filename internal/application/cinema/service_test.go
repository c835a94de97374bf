package cinema

import (
	"context"
	"sync"
	"testing"

	"github.com/Naveen2070/Hive-Movie/internal/application/ownership"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeCinemas struct {
	mu      sync.Mutex
	cinemas map[uuid.UUID]*entity.Cinema
}

func newFakeCinemas() *fakeCinemas {
	return &fakeCinemas{cinemas: make(map[uuid.UUID]*entity.Cinema)}
}

func (f *fakeCinemas) Create(ctx context.Context, c *entity.Cinema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.cinemas[c.ID] = c
	return nil
}

func (f *fakeCinemas) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cinemas[id]
	if !ok {
		return nil, apperrors.ErrNotFound("cinema")
	}
	return c, nil
}

func (f *fakeCinemas) Update(ctx context.Context, c *entity.Cinema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cinemas[c.ID] = c
	return nil
}

func (f *fakeCinemas) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cinemas, id)
	return nil
}

func (f *fakeCinemas) List(ctx context.Context, offset, limit int) ([]*entity.Cinema, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Cinema
	for _, c := range f.cinemas {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCinemas) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cinemas[id]
	if !ok {
		return apperrors.ErrNotFound("cinema")
	}
	c.ApprovalStatus = status
	return nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func TestCreateStampsOrganizerAndPending(t *testing.T) {
	cinemas := newFakeCinemas()
	svc := NewService(cinemas, testLogger())

	resp, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-1"}, CreateRequest{
		Name: "Grand Cinema", Location: "Main St", ContactEmail: "ops@grand.example",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OrganizerID != "org-1" {
		t.Fatalf("expected organizerId org-1, got %s", resp.OrganizerID)
	}
	if resp.ApprovalStatus != entity.ApprovalPending {
		t.Fatalf("expected Pending, got %s", resp.ApprovalStatus)
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	cinemas := newFakeCinemas()
	svc := NewService(cinemas, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, ownership.Principal{UserID: "org-1"}, CreateRequest{
		Name: "Grand Cinema", Location: "Main St", ContactEmail: "ops@grand.example",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, ownership.Principal{UserID: "org-2"}, created.ID, UpdateRequest{Name: "Renamed"})
	if !apperrors.Is(err, apperrors.CodeForbiddenNotOwner) {
		t.Fatalf("expected Forbidden(NotOwner), got %v", err)
	}
}

func TestUpdateApprovalStatusRequiresAdmin(t *testing.T) {
	cinemas := newFakeCinemas()
	svc := NewService(cinemas, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, ownership.Principal{UserID: "org-1"}, CreateRequest{
		Name: "Grand Cinema", Location: "Main St", ContactEmail: "ops@grand.example",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.UpdateApprovalStatus(ctx, ownership.Principal{UserID: "org-1"}, created.ID, entity.ApprovalApproved); err == nil {
		t.Fatal("expected non-admin to be rejected")
	}

	if err := svc.UpdateApprovalStatus(ctx, ownership.Principal{UserID: "admin-1", IsAdmin: true}, created.ID, entity.ApprovalApproved); err != nil {
		t.Fatalf("expected admin to succeed, got %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ApprovalStatus != entity.ApprovalApproved {
		t.Fatalf("expected Approved, got %s", got.ApprovalStatus)
	}
}
