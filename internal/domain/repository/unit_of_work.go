package repository

import "context"

// TxRepositories is the subset of repositories whose writes the
// reservation and confirmation paths must commit atomically alongside
// the showtime's seat-state update.
type TxRepositories struct {
	Showtimes ShowtimeRepository
	Tickets   TicketRepository
	Outbox    OutboxRepository
}

// UnitOfWork runs fn against repositories bound to a single storage
// transaction, committing when fn returns nil and rolling back on any
// error (including a panic recovered by the underlying transaction).
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
