package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeShowtimes is an in-memory repository.ShowtimeRepository good
// enough to exercise the CAS contract without a real database.
type fakeShowtimes struct {
	mu        sync.Mutex
	showtimes map[uuid.UUID]*entity.Showtime
}

func newFakeShowtimes(showtimes ...*entity.Showtime) *fakeShowtimes {
	f := &fakeShowtimes{showtimes: make(map[uuid.UUID]*entity.Showtime)}
	for _, s := range showtimes {
		f.showtimes[s.ID] = s
	}
	return f
}

func (f *fakeShowtimes) Create(ctx context.Context, s *entity.Showtime) error { return nil }

func (f *fakeShowtimes) GetByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	return f.GetByIDWithAuditorium(ctx, id)
}

func (f *fakeShowtimes) GetByIDWithAuditorium(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.showtimes[id]
	if !ok {
		return nil, apperrors.ErrNotFound("showtime")
	}
	cp := *s
	cp.SeatAvailabilityState = append([]byte(nil), s.SeatAvailabilityState...)
	return &cp, nil
}

func (f *fakeShowtimes) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeShowtimes) UpdateDetails(ctx context.Context, s *entity.Showtime) error { return nil }

func (f *fakeShowtimes) List(ctx context.Context, filter repository.ShowtimeFilter, offset, limit int) ([]*entity.Showtime, int64, error) {
	return nil, 0, nil
}

func (f *fakeShowtimes) UpdateWithVersion(ctx context.Context, id uuid.UUID, buffer []byte, expectedVersion int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.showtimes[id]
	if !ok {
		return 0, apperrors.ErrNotFound("showtime")
	}
	if s.VersionToken != expectedVersion {
		return 0, repository.ErrVersionConflict
	}
	s.SeatAvailabilityState = buffer
	s.VersionToken++
	return s.VersionToken, nil
}

func (f *fakeShowtimes) FindOverduePending(ctx context.Context, olderThan time.Time) ([]repository.ExpiredPendingTicket, error) {
	return nil, nil
}

// fakeTickets is an in-memory repository.TicketRepository.
type fakeTickets struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]*entity.Ticket
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{tickets: make(map[uuid.UUID]*entity.Ticket)}
}

func (f *fakeTickets) Create(ctx context.Context, t *entity.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets[t.ID] = t
	return nil
}

func (f *fakeTickets) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[id]
	if !ok {
		return nil, apperrors.ErrNotFound("ticket")
	}
	return t, nil
}

func (f *fakeTickets) GetByBookingReference(ctx context.Context, ref string) (*entity.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.BookingReference == ref {
			return t, nil
		}
	}
	return nil, apperrors.ErrNotFound("ticket")
}

func (f *fakeTickets) ExistsByBookingReference(ctx context.Context, ref string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.BookingReference == ref {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTickets) Update(ctx context.Context, t *entity.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets[t.ID] = t
	return nil
}

func (f *fakeTickets) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*entity.Ticket, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Ticket
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

// fakeOutbox is an in-memory repository.OutboxRepository.
type fakeOutbox struct {
	mu       sync.Mutex
	inserted []*entity.OutboxMessage
}

func (f *fakeOutbox) Insert(ctx context.Context, msg *entity.OutboxMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, msg)
	return nil
}

func (f *fakeOutbox) ClaimBatch(ctx context.Context, limit int, maxRetries int) ([]*entity.OutboxMessage, error) {
	return nil, nil
}
func (f *fakeOutbox) ResetStuck(ctx context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeOutbox) MarkProcessed(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id uuid.UUID, msg string) error {
	return nil
}

// fakeUnitOfWork runs fn directly against the shared fakes: there is no
// real transaction to roll back, which is acceptable for these tests
// since none of them exercise mid-transaction failure recovery.
type fakeUnitOfWork struct {
	showtimes *fakeShowtimes
	tickets   *fakeTickets
	outbox    *fakeOutbox
}

func (u *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	return fn(ctx, repository.TxRepositories{
		Showtimes: u.showtimes,
		Tickets:   u.tickets,
		Outbox:    u.outbox,
	})
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func newTestShowtime(basePrice string, maxRows, maxCols int) *entity.Showtime {
	price, _ := entity.NewMoney(basePrice)
	return &entity.Showtime{
		ID:                    uuid.New(),
		BasePrice:             price,
		SeatAvailabilityState: engine.NewBuffer(maxRows, maxCols),
		VersionToken:          0,
		Auditorium: entity.Auditorium{
			MaxRows:    maxRows,
			MaxColumns: maxCols,
			Layout:     entity.Layout{},
		},
	}
}

func newTestService(showtime *entity.Showtime) (*Service, *fakeShowtimes, *fakeTickets) {
	showtimes := newFakeShowtimes(showtime)
	tickets := newFakeTickets()
	outbox := &fakeOutbox{}
	uow := &fakeUnitOfWork{showtimes: showtimes, tickets: tickets, outbox: outbox}

	svc := NewService(showtimes, tickets, uow, cache.New(time.Minute), testLogger())
	return svc, showtimes, tickets
}

func TestReserveHappyPath(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	svc, _, _ := newTestService(showtime)

	out, err := svc.Reserve(context.Background(), ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		UserID:     "user-1",
		UserEmail:  "user@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != entity.TicketPending {
		t.Fatalf("expected Pending, got %s", out.Status)
	}
	if out.TotalAmount.String() != "20.00" {
		t.Fatalf("expected 20.00, got %s", out.TotalAmount.String())
	}
}

func TestReserveConflictWhenSeatTaken(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	svc, _, _ := newTestService(showtime)

	ctx := context.Background()
	seats := []entity.Coord{{Row: 1, Col: 1}}

	if _, err := svc.Reserve(ctx, ReserveInput{ShowtimeID: showtime.ID, Seats: seats, UserID: "a", UserEmail: "a@x.com"}); err != nil {
		t.Fatalf("first reservation should succeed: %v", err)
	}

	_, err := svc.Reserve(ctx, ReserveInput{ShowtimeID: showtime.ID, Seats: seats, UserID: "b", UserEmail: "b@x.com"})
	if !apperrors.Is(err, apperrors.CodeConflictSeatsUnavailable) {
		t.Fatalf("expected Conflict(SeatsUnavailable), got %v", err)
	}
}

func TestReserveRejectsDisabledSeat(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	showtime.Auditorium.Layout.Disabled = []entity.Coord{{Row: 2, Col: 2}}
	svc, _, _ := newTestService(showtime)

	_, err := svc.Reserve(context.Background(), ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []entity.Coord{{Row: 2, Col: 2}},
		UserID:     "a",
		UserEmail:  "a@x.com",
	})
	if !apperrors.Is(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error for disabled seat, got %v", err)
	}
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	svc, _, tickets := newTestService(showtime)
	ctx := context.Background()

	out, err := svc.Reserve(ctx, ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []entity.Coord{{Row: 0, Col: 0}},
		UserID:     "a",
		UserEmail:  "a@x.com",
	})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	if err := svc.ConfirmPayment(ctx, out.BookingReference); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if err := svc.ConfirmPayment(ctx, out.BookingReference); err != nil {
		t.Fatalf("second confirm should be a no-op, got error: %v", err)
	}

	confirmed, err := tickets.GetByBookingReference(ctx, out.BookingReference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Status != entity.TicketConfirmed {
		t.Fatalf("expected Confirmed, got %s", confirmed.Status)
	}
}

func TestConfirmPaymentRejectsExpiredTicket(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	svc, _, tickets := newTestService(showtime)
	ctx := context.Background()

	ticket := &entity.Ticket{
		ID:               uuid.New(),
		ShowtimeID:       showtime.ID,
		BookingReference: "HIVE-DEADBEEF",
		Status:           entity.TicketExpired,
	}
	_ = tickets.Create(ctx, ticket)

	err := svc.ConfirmPayment(ctx, ticket.BookingReference)
	if !apperrors.Is(err, apperrors.CodeInvalidState) {
		t.Fatalf("expected InvalidState, got %v", err)
	}
}

func TestListOwnTicketsUnknownUserReturnsEmpty(t *testing.T) {
	showtime := newTestShowtime("10.00", 5, 5)
	svc, _, _ := newTestService(showtime)

	views, total, err := svc.ListOwnTickets(context.Background(), "nobody", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || len(views) != 0 {
		t.Fatalf("expected empty result, got %d/%d", len(views), total)
	}
}
