package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the shared gorm connection used by every repository
// in this package.
type Database struct {
	DB     *gorm.DB
	logger *logger.Logger
}

// New opens the storage connection and verifies it with a ping.
func New(cfg config.DatabaseConfig, log *logger.Logger) (*Database, error) {
	logLevel := gormlogger.Silent
	if cfg.SSLMode == "disable" {
		logLevel = gormlogger.Info
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("storage connection established")

	return &Database{DB: db, logger: log}, nil
}

// AutoMigrate creates or updates every table this module owns. cmd/api
// runs it at every startup; the repository ships no goose migration files
// for cmd/migrate to apply.
func (d *Database) AutoMigrate() error {
	d.logger.Info("running auto-migration")

	err := d.DB.AutoMigrate(
		&entity.User{},
		&entity.RefreshToken{},
		&entity.PasswordResetToken{},
		&entity.EmailVerificationToken{},

		&entity.Movie{},
		&entity.Cinema{},
		&entity.Auditorium{},
		&entity.Showtime{},
		&entity.Ticket{},
		&entity.OutboxMessage{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	d.logger.Info("auto-migration completed")
	return nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health reports whether the connection can still be reached.
func (d *Database) Health(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Transaction runs fn inside a single database transaction.
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// WithContext returns the underlying *gorm.DB bound to ctx.
func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}
