// Package expiry runs the single-instance background sweep that
// releases seats held past the reservation hold window.
package expiry

import (
	"context"
	"errors"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	"github.com/Naveen2070/Hive-Movie/internal/engine"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
)

const (
	defaultTickInterval = 60 * time.Second
	defaultHoldWindow   = 10 * time.Minute
)

// Worker sweeps overdue Pending tickets and releases their seats. Each
// ticket is processed in its own transaction so a single bad row never
// aborts the rest of the sweep.
type Worker struct {
	showtimes    repository.ShowtimeRepository
	tickets      repository.TicketRepository
	uow          repository.UnitOfWork
	seatMap      *cache.TTLCache
	logger       *logger.Logger
	tickInterval time.Duration
	holdWindow   time.Duration
}

// NewWorker creates a new expiry worker. A zero tickInterval or
// holdWindow falls back to the documented default.
func NewWorker(
	showtimes repository.ShowtimeRepository,
	tickets repository.TicketRepository,
	uow repository.UnitOfWork,
	seatMap *cache.TTLCache,
	log *logger.Logger,
	tickInterval time.Duration,
	holdWindow time.Duration,
) *Worker {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	if holdWindow <= 0 {
		holdWindow = defaultHoldWindow
	}
	return &Worker{
		showtimes:    showtimes,
		tickets:      tickets,
		uow:          uow,
		seatMap:      seatMap,
		logger:       log,
		tickInterval: tickInterval,
		holdWindow:   holdWindow,
	}
}

// Run drives one sweep per tick until ctx is cancelled, finishing the
// in-flight tick before returning.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.holdWindow)

	overdue, err := w.showtimes.FindOverduePending(ctx, cutoff)
	if err != nil {
		w.logger.Error("expiry sweep: failed to load overdue tickets", logger.String("error", err.Error()))
		return
	}

	for _, row := range overdue {
		if err := w.expireOne(ctx, row); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				w.logger.Warn("expiry sweep: version conflict, retrying next tick",
					logger.String("showtime_id", row.ShowtimeID.String()))
				continue
			}
			w.logger.Error("expiry sweep: failed to expire ticket",
				logger.String("ticket_id", row.TicketID.String()),
				logger.String("error", err.Error()))
			continue
		}
		w.seatMap.Invalidate("seatMap:" + row.ShowtimeID.String())
	}
}

func (w *Worker) expireOne(ctx context.Context, row repository.ExpiredPendingTicket) error {
	return w.uow.WithinTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		showtime, err := repos.Showtimes.GetByID(ctx, row.ShowtimeID)
		if err != nil {
			return err
		}

		ticket, err := repos.Tickets.GetByID(ctx, row.TicketID)
		if err != nil {
			return err
		}
		if ticket.Status != entity.TicketPending {
			return nil
		}

		eng := engine.New(showtime.SeatAvailabilityState, row.AuditoriumMaxRow, row.AuditoriumMaxCol)
		for _, seat := range row.ReservedSeats {
			if err := eng.Release(seat.Row, seat.Col); err != nil {
				continue
			}
		}

		if _, err := repos.Showtimes.UpdateWithVersion(ctx, showtime.ID, eng.Buffer(), showtime.VersionToken); err != nil {
			return err
		}

		ticket.Status = entity.TicketExpired
		return repos.Tickets.Update(ctx, ticket)
	})
}
