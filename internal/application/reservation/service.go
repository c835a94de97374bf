// Package reservation owns the Pending/Confirmed/Expired ticket
// lifecycle and the money calculation for a showtime's seats.
package reservation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"github.com/google/uuid"
)

const bookingReferenceRetries = 3

// Service implements Reserve, ConfirmPayment, and ListOwnTickets.
type Service struct {
	showtimes repository.ShowtimeRepository
	tickets   repository.TicketRepository
	uow       repository.UnitOfWork
	seatMap   *cache.TTLCache
	logger    *logger.Logger
}

// NewService creates a new reservation service.
func NewService(
	showtimes repository.ShowtimeRepository,
	tickets repository.TicketRepository,
	uow repository.UnitOfWork,
	seatMap *cache.TTLCache,
	log *logger.Logger,
) *Service {
	return &Service{
		showtimes: showtimes,
		tickets:   tickets,
		uow:       uow,
		seatMap:   seatMap,
		logger:    log,
	}
}

// Reserve holds the requested seats for the caller, pending payment.
func (s *Service) Reserve(ctx context.Context, in ReserveInput) (*ReserveOutput, error) {
	if len(in.Seats) == 0 {
		return nil, apperrors.ErrValidation("at least one seat must be requested")
	}

	showtime, err := s.showtimes.GetByIDWithAuditorium(ctx, in.ShowtimeID)
	if err != nil {
		return nil, err
	}

	if err := rejectDisabledSeats(showtime, in.Seats); err != nil {
		return nil, err
	}

	total, err := priceSeats(showtime, in.Seats)
	if err != nil {
		return nil, err
	}

	eng := engine.New(showtime.SeatAvailabilityState, showtime.Auditorium.MaxRows, showtime.Auditorium.MaxColumns)
	ok, err := eng.TryReserveBatch(in.Seats)
	if err != nil {
		return nil, apperrors.ErrBadRequest("requested seat is out of bounds").WithError(err)
	}
	if !ok {
		return nil, apperrors.ErrSeatsUnavailable()
	}

	var out ReserveOutput

	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		bookingRef, err := generateUniqueBookingReference(ctx, repos.Tickets)
		if err != nil {
			return err
		}

		ticket := &entity.Ticket{
			ID:               uuid.New(),
			UserID:           in.UserID,
			UserEmail:        in.UserEmail,
			ShowtimeID:       in.ShowtimeID,
			BookingReference: bookingRef,
			ReservedSeats:    entity.Coords(in.Seats),
			TotalAmount:      total,
			Status:           entity.TicketPending,
			CreatedAtUtc:     time.Now().UTC(),
		}

		if _, err := repos.Showtimes.UpdateWithVersion(ctx, showtime.ID, eng.Buffer(), showtime.VersionToken); err != nil {
			return err
		}

		if err := repos.Tickets.Create(ctx, ticket); err != nil {
			return err
		}

		out = ReserveOutput{
			TicketID:         ticket.ID,
			BookingReference: ticket.BookingReference,
			TotalAmount:      ticket.TotalAmount,
			Status:           ticket.Status,
			CreatedAtUtc:     ticket.CreatedAtUtc,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, apperrors.ErrConcurrency()
		}
		return nil, err
	}

	s.seatMap.Invalidate(seatMapKey(in.ShowtimeID))

	return &out, nil
}

// ConfirmPayment transitions a Pending ticket to Confirmed and enqueues
// its notification. It is idempotent against repeated webhook delivery.
func (s *Service) ConfirmPayment(ctx context.Context, bookingReference string) error {
	ticket, err := s.tickets.GetByBookingReference(ctx, bookingReference)
	if err != nil {
		return err
	}

	if ticket.Status == entity.TicketConfirmed {
		return nil
	}
	if !ticket.CanConfirm() {
		return apperrors.ErrInvalidState(fmt.Sprintf("ticket is %s, cannot confirm", ticket.Status))
	}

	showtime, err := s.showtimes.GetByIDWithAuditorium(ctx, ticket.ShowtimeID)
	if err != nil {
		return err
	}

	eng := engine.New(showtime.SeatAvailabilityState, showtime.Auditorium.MaxRows, showtime.Auditorium.MaxColumns)
	for _, seat := range ticket.ReservedSeats {
		if err := eng.MarkSold(seat.Row, seat.Col); err != nil {
			s.logger.Error("seat-state corruption on confirm",
				logger.String("booking_reference", bookingReference),
				logger.Int("row", seat.Row),
				logger.Int("col", seat.Col))
			return apperrors.ErrInternal("seat state corruption").WithError(err)
		}
	}

	now := time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		if _, err := repos.Showtimes.UpdateWithVersion(ctx, showtime.ID, eng.Buffer(), showtime.VersionToken); err != nil {
			return err
		}

		ticket.Status = entity.TicketConfirmed
		ticket.PaidAtUtc = &now
		if err := repos.Tickets.Update(ctx, ticket); err != nil {
			return err
		}

		payload, err := json.Marshal(entity.EmailNotificationPayload{
			RecipientEmail: ticket.UserEmail,
			Subject:        "Your booking is confirmed",
			TemplateCode:   "booking_confirmed",
			Variables: map[string]string{
				"bookingReference": ticket.BookingReference,
			},
		})
		if err != nil {
			return apperrors.ErrInternal("failed to marshal notification payload").WithError(err)
		}

		return repos.Outbox.Insert(ctx, &entity.OutboxMessage{
			ID:           uuid.New(),
			EventType:    entity.EventEmailNotification,
			Payload:      entity.JSONPayload(payload),
			CreatedAtUtc: now,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return apperrors.ErrConcurrency()
		}
		return err
	}

	s.seatMap.Invalidate(seatMapKey(ticket.ShowtimeID))

	return nil
}

// ListOwnTickets returns every ticket belonging to userID, newest first.
// Unknown users produce an empty slice rather than an error.
func (s *Service) ListOwnTickets(ctx context.Context, userID string, offset, limit int) ([]TicketView, int64, error) {
	tickets, total, err := s.tickets.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		view := TicketView{
			TicketID:         t.ID,
			BookingReference: t.BookingReference,
			Status:           t.Status,
			TotalAmount:      t.TotalAmount,
			ReservedSeats:    t.ReservedSeats,
			CreatedAtUtc:     t.CreatedAtUtc,
			PaidAtUtc:        t.PaidAtUtc,
		}
		if t.Showtime.ID != uuid.Nil {
			view.MovieTitle = t.Showtime.Movie.Title
			view.AuditoriumName = t.Showtime.Auditorium.Name
			view.StartTimeUtc = t.Showtime.StartTimeUtc
		}
		views = append(views, view)
	}

	return views, total, nil
}

func rejectDisabledSeats(showtime *entity.Showtime, seats []entity.Coord) error {
	disabled := showtime.Auditorium.Layout.DisabledSet()
	for _, seat := range seats {
		if _, isDisabled := disabled[seat]; isDisabled {
			return apperrors.ErrValidation(fmt.Sprintf("seat (%d,%d) is disabled", seat.Row, seat.Col))
		}
	}
	return nil
}

// priceSeats sums the showtime's base price plus any tier surcharge for
// each requested seat. Tiers listing the same seat more than once are a
// data-model violation rejected at layout-write time, not here.
func priceSeats(showtime *entity.Showtime, seats []entity.Coord) (entity.Money, error) {
	surcharges, ok := showtime.Auditorium.Layout.SurchargeIndex()
	if !ok {
		return entity.Money{}, apperrors.ErrInternal("auditorium layout has duplicate seats across tiers")
	}

	total := entity.ZeroMoney()
	for _, seat := range seats {
		total = total.Add(showtime.BasePrice)
		if surcharge, hasTier := surcharges[seat]; hasTier {
			total = total.Add(surcharge)
		}
	}
	return total, nil
}

func generateUniqueBookingReference(ctx context.Context, tickets repository.TicketRepository) (string, error) {
	for attempt := 0; attempt < bookingReferenceRetries; attempt++ {
		ref, err := randomBookingReference()
		if err != nil {
			return "", apperrors.ErrInternal("failed to generate booking reference").WithError(err)
		}

		exists, err := tickets.ExistsByBookingReference(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
	}
	return "", apperrors.ErrInternal("failed to allocate a unique booking reference")
}

func randomBookingReference() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "HIVE-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

func seatMapKey(showtimeID uuid.UUID) string {
	return "seatMap:" + showtimeID.String()
}
