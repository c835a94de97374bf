package provider

import (
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/broker"
	"github.com/Naveen2070/Hive-Movie/internal/infrastructure/persistence/postgres"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/cache"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/tracer"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/validator"
)

// ProvideLogger creates and returns a logger instance
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
}

// ProvideTracer creates and returns a tracer provider
func ProvideTracer(cfg *config.Config) (*tracer.Tracer, error) {
	return tracer.New(tracer.Config{
		Enabled:     cfg.Tracer.Enabled,
		ServiceName: cfg.Tracer.ServiceName,
		Endpoint:    cfg.Tracer.Endpoint,
		Insecure:    cfg.Tracer.Insecure,
		SampleRate:  cfg.Tracer.SampleRate,
		Environment: cfg.App.Environment,
		Version:     cfg.App.Version,
	})
}

// ProvideDatabase creates and returns a database connection
func ProvideDatabase(cfg *config.Config, log *logger.Logger) (*postgres.Database, error) {
	return postgres.New(cfg.Database, log)
}

// ProvideSeatMapCache creates the in-process seat-map read cache shared
// by the seat-map projection and invalidated by the reservation/expiry
// write paths.
func ProvideSeatMapCache(cfg *config.Config) *cache.TTLCache {
	ttl := cfg.SeatMap.CacheTtl
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return cache.New(ttl)
}

// ProvideBrokerPublisher dials the message broker used by the outbox
// dispatcher to publish email notifications.
func ProvideBrokerPublisher(cfg *config.Config, log *logger.Logger) (*broker.Publisher, error) {
	return broker.NewPublisher(cfg.Broker, log)
}

// ProvideValidator creates and returns a request validator
func ProvideValidator() *validator.Validator {
	return validator.New()
}
