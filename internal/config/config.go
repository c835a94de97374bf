package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Tracer   TracerConfig   `mapstructure:"tracer"`
	Email    EmailConfig    `mapstructure:"email"`

	Storage         StorageConfig         `mapstructure:"storage"`
	IdentityService IdentityServiceConfig `mapstructure:"identityService"`
	Internal        InternalConfig        `mapstructure:"internal"`
	Broker          BrokerConfig          `mapstructure:"broker"`
	Reservation     ReservationConfig     `mapstructure:"reservation"`
	Expiry          ExpiryConfig          `mapstructure:"expiry"`
	Outbox          OutboxConfig          `mapstructure:"outbox"`
	SeatMap         SeatMapConfig         `mapstructure:"seatMap"`
}

// StorageConfig holds the reservation core's storage endpoint.
type StorageConfig struct {
	Connection string `mapstructure:"connection"`
}

// IdentityServiceConfig points at the external Identity collaborator.
type IdentityServiceConfig struct {
	URL string `mapstructure:"url"`
}

// InternalConfig holds the service-to-service HMAC signing material used
// when calling the Identity service.
type InternalConfig struct {
	ServiceID    string `mapstructure:"serviceId"`
	SharedSecret string `mapstructure:"sharedSecret"`
}

// BrokerConfig holds the message-broker connection used by the outbox
// dispatcher.
type BrokerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	VirtualHost string `mapstructure:"virtualHost"`
}

// URL returns the AMQP connection URL for this broker configuration.
func (b *BrokerConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", b.Username, b.Password, b.Host, b.Port, b.VirtualHost)
}

// ReservationConfig holds the reservation service's hold window.
type ReservationConfig struct {
	HoldWindow time.Duration `mapstructure:"holdWindow"`
}

// ExpiryConfig holds the expiry worker's cadence.
type ExpiryConfig struct {
	TickInterval time.Duration `mapstructure:"tickInterval"`
}

// OutboxConfig holds the outbox dispatcher's cadence and retry policy.
type OutboxConfig struct {
	BatchSize    int           `mapstructure:"batchSize"`
	TickInterval time.Duration `mapstructure:"tickInterval"`
	StuckTimeout time.Duration `mapstructure:"stuckTimeout"`
	MaxRetries   int           `mapstructure:"maxRetries"`
}

// SeatMapConfig holds the seat-map read service's in-process cache TTL.
type SeatMapConfig struct {
	CacheTtl time.Duration `mapstructure:"cacheTtl"`
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	DebugLevel      string        `mapstrucutre:"debug_level"`
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
}

// Address returns the Redis address
func (r *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret       string        `mapstructure:"access_secret"`
	RefreshSecret      string        `mapstructure:"refresh_secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_token_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_token_expiry"`
	ResetTokenExpiry   time.Duration `mapstructure:"reset_token_expiry"`
	VerifyTokenExpiry  time.Duration `mapstructure:"verify_token_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	Output     string `mapstructure:"output"` // stdout, file path
	TimeFormat string `mapstructure:"time_format"`
}

// TracerConfig holds OpenTelemetry tracing configuration
type TracerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// EmailConfig holds email configuration for password reset etc.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	FrontendURL  string `mapstructure:"frontend_url"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")         // Tên file là config (không cần đuôi .yaml)
		v.SetConfigType("yaml")           // Ép kiểu là yaml
		v.AddConfigPath(".")              // Tìm ở thư mục hiện tại
		v.AddConfigPath("./config")       // Tìm trong folder config
		v.AddConfigPath("/etc/cinemaos/") // Tìm trong thư mục hệ thống (Linux/AWS)
		// Nơi nào thấy file config.yaml trước thì nó dừng lại và dùng file đó.
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; ignore error if it's optional
	}

	// Override with environment variables
	v.SetEnvPrefix("CINEMAOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "CinemaOS")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", true)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "cinemaos")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "5m")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 5)
	v.SetDefault("redis.dial_timeout", "5s")

	// JWT defaults
	v.SetDefault("jwt.access_secret", "your-super-secret-access-key-change-in-production")
	v.SetDefault("jwt.refresh_secret", "your-super-secret-refresh-key-change-in-production")
	v.SetDefault("jwt.access_token_expiry", "15m")
	v.SetDefault("jwt.refresh_token_expiry", "168h") // 7 days
	v.SetDefault("jwt.reset_token_expiry", "1h")
	v.SetDefault("jwt.verify_token_expiry", "24h")
	v.SetDefault("jwt.issuer", "cinemaos")

	// CORS defaults
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"})
	v.SetDefault("cors.expose_headers", []string{"X-Request-ID"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 86400)

	// Logger defaults
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.time_format", "2006-01-02T15:04:05.000Z07:00")

	// Tracer defaults
	v.SetDefault("tracer.enabled", false)
	v.SetDefault("tracer.service_name", "github.com/Naveen2070/Hive-Movie")
	v.SetDefault("tracer.endpoint", "localhost:4317")
	v.SetDefault("tracer.insecure", true)
	v.SetDefault("tracer.sample_rate", 1.0)

	// Email defaults
	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.from_name", "CinemaOS")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Reservation core defaults
	v.SetDefault("storage.connection", "")
	v.SetDefault("identityService.url", "http://localhost:8090")
	v.SetDefault("internal.serviceId", "hive-reservation-core")
	v.SetDefault("internal.sharedSecret", "change-me-in-production")

	v.SetDefault("broker.host", "localhost")
	v.SetDefault("broker.port", 5672)
	v.SetDefault("broker.username", "guest")
	v.SetDefault("broker.password", "guest")
	v.SetDefault("broker.virtualHost", "/")

	v.SetDefault("reservation.holdWindow", "10m")
	v.SetDefault("expiry.tickInterval", "60s")

	v.SetDefault("outbox.batchSize", 50)
	v.SetDefault("outbox.tickInterval", "10s")
	v.SetDefault("outbox.stuckTimeout", "5m")
	v.SetDefault("outbox.maxRetries", 5)

	v.SetDefault("seatMap.cacheTtl", "60s")
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
