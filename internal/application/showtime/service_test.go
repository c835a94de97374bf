package showtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/application/ownership"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeShowtimes struct {
	mu        sync.Mutex
	showtimes map[uuid.UUID]*entity.Showtime
}

func newFakeShowtimes() *fakeShowtimes {
	return &fakeShowtimes{showtimes: make(map[uuid.UUID]*entity.Showtime)}
}

func (f *fakeShowtimes) Create(ctx context.Context, s *entity.Showtime) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.showtimes[s.ID] = s
	return nil
}

func (f *fakeShowtimes) GetByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.showtimes[id]
	if !ok {
		return nil, apperrors.ErrNotFound("showtime")
	}
	return s, nil
}

func (f *fakeShowtimes) GetByIDWithAuditorium(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeShowtimes) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.showtimes, id)
	return nil
}

func (f *fakeShowtimes) List(ctx context.Context, filter repository.ShowtimeFilter, offset, limit int) ([]*entity.Showtime, int64, error) {
	return nil, 0, nil
}

func (f *fakeShowtimes) UpdateDetails(ctx context.Context, s *entity.Showtime) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showtimes[s.ID] = s
	return nil
}

func (f *fakeShowtimes) UpdateWithVersion(ctx context.Context, id uuid.UUID, buffer []byte, expectedVersion int64) (int64, error) {
	return 0, nil
}

func (f *fakeShowtimes) FindOverduePending(ctx context.Context, olderThan time.Time) ([]repository.ExpiredPendingTicket, error) {
	return nil, nil
}

type fakeAuditoriums struct {
	auditoriums map[uuid.UUID]*entity.Auditorium
}

func newFakeAuditoriums(auditoriums ...*entity.Auditorium) *fakeAuditoriums {
	f := &fakeAuditoriums{auditoriums: make(map[uuid.UUID]*entity.Auditorium)}
	for _, a := range auditoriums {
		f.auditoriums[a.ID] = a
	}
	return f
}

func (f *fakeAuditoriums) Create(ctx context.Context, a *entity.Auditorium) error { return nil }
func (f *fakeAuditoriums) GetByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	a, ok := f.auditoriums[id]
	if !ok {
		return nil, apperrors.ErrNotFound("auditorium")
	}
	return a, nil
}
func (f *fakeAuditoriums) Update(ctx context.Context, a *entity.Auditorium) error { return nil }
func (f *fakeAuditoriums) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (f *fakeAuditoriums) List(ctx context.Context, offset, limit int) ([]*entity.Auditorium, int64, error) {
	return nil, 0, nil
}
func (f *fakeAuditoriums) ListByCinema(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	return nil, nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func newApprovedAuditorium() *entity.Auditorium {
	return &entity.Auditorium{
		ID:         uuid.New(),
		CinemaID:   uuid.New(),
		MaxRows:    5,
		MaxColumns: 5,
		Cinema: entity.Cinema{
			OrganizerID:    "org-1",
			ApprovalStatus: entity.ApprovalApproved,
		},
	}
}

func TestCreateRequiresApprovedCinema(t *testing.T) {
	auditorium := newApprovedAuditorium()
	auditorium.Cinema.ApprovalStatus = entity.ApprovalPending
	svc := NewService(newFakeShowtimes(), newFakeAuditoriums(auditorium), testLogger())

	_, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-1"}, CreateRequest{
		MovieID: uuid.New(), AuditoriumID: auditorium.ID, StartTimeUtc: time.Now(), BasePrice: "10.00",
	})
	if !apperrors.Is(err, apperrors.CodeConflictNotApproved) {
		t.Fatalf("expected Conflict(NotApproved), got %v", err)
	}
}

func TestCreateRejectsNonOwner(t *testing.T) {
	auditorium := newApprovedAuditorium()
	svc := NewService(newFakeShowtimes(), newFakeAuditoriums(auditorium), testLogger())

	_, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-2"}, CreateRequest{
		MovieID: uuid.New(), AuditoriumID: auditorium.ID, StartTimeUtc: time.Now(), BasePrice: "10.00",
	})
	if !apperrors.Is(err, apperrors.CodeForbiddenNotOwner) {
		t.Fatalf("expected Forbidden(NotOwner), got %v", err)
	}
}

func TestCreateSucceedsAndSizesBuffer(t *testing.T) {
	auditorium := newApprovedAuditorium()
	svc := NewService(newFakeShowtimes(), newFakeAuditoriums(auditorium), testLogger())

	resp, err := svc.Create(context.Background(), ownership.Principal{UserID: "org-1"}, CreateRequest{
		MovieID: uuid.New(), AuditoriumID: auditorium.ID, StartTimeUtc: time.Now(), BasePrice: "10.00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.BasePrice != "10.00" {
		t.Fatalf("expected 10.00, got %s", resp.BasePrice)
	}

	showtimes := svc.showtimes.(*fakeShowtimes)
	sh, _ := showtimes.GetByID(context.Background(), resp.ID)
	want := len(engine.NewBuffer(5, 5))
	if len(sh.SeatAvailabilityState) != want {
		t.Fatalf("expected buffer sized to %d, got %d", want, len(sh.SeatAvailabilityState))
	}
}
