package postgres

import (
	"context"
	"errors"

	"github.com/Naveen2070/Hive-Movie/internal/domain/repository"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"

	"gorm.io/gorm"
)

type unitOfWork struct {
	db *Database
}

// NewUnitOfWork creates the transaction boundary the reservation and
// confirmation write paths run under.
func NewUnitOfWork(db *Database) repository.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	err := u.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDB := &Database{DB: tx}
		repos := repository.TxRepositories{
			Showtimes: &showtimeRepository{db: txDB},
			Tickets:   &ticketRepository{db: txDB},
			Outbox:    &outboxRepository{db: txDB},
		}
		return fn(ctx, repos)
	})
	if err != nil {
		if err == repository.ErrVersionConflict {
			return err
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Wrap(err, apperrors.CodeInternal, "transaction failed")
	}
	return nil
}
