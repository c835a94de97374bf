package auditorium

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

type fakeAuditoriums struct {
	mu          sync.Mutex
	auditoriums map[uuid.UUID]*entity.Auditorium
}

func newFakeAuditoriums() *fakeAuditoriums {
	return &fakeAuditoriums{auditoriums: make(map[uuid.UUID]*entity.Auditorium)}
}

func (f *fakeAuditoriums) Create(ctx context.Context, a *entity.Auditorium) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.auditoriums[a.ID] = a
	return nil
}

func (f *fakeAuditoriums) GetByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.auditoriums[id]
	if !ok {
		return nil, apperrors.ErrNotFound("auditorium")
	}
	return a, nil
}

func (f *fakeAuditoriums) Update(ctx context.Context, a *entity.Auditorium) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auditoriums[a.ID] = a
	return nil
}

func (f *fakeAuditoriums) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.auditoriums, id)
	return nil
}

func (f *fakeAuditoriums) List(ctx context.Context, offset, limit int) ([]*entity.Auditorium, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Auditorium
	for _, a := range f.auditoriums {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAuditoriums) ListByCinema(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Auditorium
	for _, a := range f.auditoriums {
		if a.CinemaID == cinemaID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeCinemas struct {
	mu      sync.Mutex
	cinemas map[uuid.UUID]*entity.Cinema
}

func newFakeCinemas(cinemas ...*entity.Cinema) *fakeCinemas {
	f := &fakeCinemas{cinemas: make(map[uuid.UUID]*entity.Cinema)}
	for _, c := range cinemas {
		f.cinemas[c.ID] = c
	}
	return f
}

func (f *fakeCinemas) Create(ctx context.Context, c *entity.Cinema) error { return nil }
func (f *fakeCinemas) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cinemas[id]
	if !ok {
		return nil, apperrors.ErrNotFound("cinema")
	}
	return c, nil
}
func (f *fakeCinemas) Update(ctx context.Context, c *entity.Cinema) error { return nil }
func (f *fakeCinemas) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
func (f *fakeCinemas) List(ctx context.Context, offset, limit int) ([]*entity.Cinema, int64, error) {
	return nil, 0, nil
}
func (f *fakeCinemas) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	return nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func TestCreateRejectsNonOwner(t *testing.T) {
	cinema := &entity.Cinema{ID: uuid.New(), OrganizerID: "org-1"}
	svc := NewService(newFakeAuditoriums(), newFakeCinemas(cinema), testLogger())

	_, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-2"}, CreateRequest{
		CinemaID: cinema.ID, Name: "Hall A", MaxRows: 5, MaxColumns: 5,
	})
	if !apperrors.Is(err, apperrors.CodeForbiddenNotOwner) {
		t.Fatalf("expected Forbidden(NotOwner), got %v", err)
	}
}

func TestCreateRejectsDuplicateTierSeat(t *testing.T) {
	cinema := &entity.Cinema{ID: uuid.New(), OrganizerID: "org-1"}
	svc := NewService(newFakeAuditoriums(), newFakeCinemas(cinema), testLogger())

	_, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-1"}, CreateRequest{
		CinemaID: cinema.ID, Name: "Hall A", MaxRows: 5, MaxColumns: 5,
		Layout: LayoutRequest{
			Tiers: []TierRequest{
				{TierName: "Premium", PriceSurcharge: "2.00", Seats: []entity.Coord{{Row: 0, Col: 0}}},
				{TierName: "VIP", PriceSurcharge: "5.00", Seats: []entity.Coord{{Row: 0, Col: 0}}},
			},
		},
	})
	if !apperrors.Is(err, apperrors.CodeValidation) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}
}

func TestCreateSucceedsForOwner(t *testing.T) {
	cinema := &entity.Cinema{ID: uuid.New(), OrganizerID: "org-1"}
	svc := NewService(newFakeAuditoriums(), newFakeCinemas(cinema), testLogger())

	resp, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-1"}, CreateRequest{
		CinemaID: cinema.ID, Name: "Hall A", MaxRows: 5, MaxColumns: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.MaxRows != 5 || resp.MaxColumns != 5 {
		t.Fatalf("expected 5x5, got %dx%d", resp.MaxRows, resp.MaxColumns)
	}
}
