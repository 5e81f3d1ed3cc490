package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Драйверы хранилища
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSupabase = "supabase"
)

// Переменные окружения с секретами
const (
	envDBPassword    = "DB_PASSWORD"
	envSupabaseKey   = "SUPABASE_KEY"
	envRedisPassword = "REDIS_PASSWORD"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
	Storage      StorageConfig      `toml:"storage"`
	Redis        RedisConfig        `toml:"redis"`
	Supabase     SupabaseConfig     `toml:"supabase"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AvailabilityConfig struct {
	SlotIntervalMinutes     int    `toml:"slot_interval_minutes"`
	Timezone                string `toml:"timezone"`
	BarberSearchConcurrency int    `toml:"barber_search_concurrency"`
}

// Location загружает часовой пояс барбершопов
func (a AvailabilityConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

type StorageConfig struct {
	Driver string `toml:"driver"`
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"-"`
	DB              int    `toml:"db"`
	ScheduleTTLSecs int    `toml:"schedule_ttl_seconds"`
}

// ScheduleTTL время жизни закешированного расписания
func (r RedisConfig) ScheduleTTL() time.Duration {
	return time.Duration(r.ScheduleTTLSecs) * time.Second
}

type SupabaseConfig struct {
	URL                string `toml:"url"`
	Key                string `toml:"-"`
	RequestTimeoutSecs int    `toml:"request_timeout_seconds"`
}

// RequestTimeout ограничение на один запрос к PostgREST
func (s SupabaseConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSecs) * time.Second
}

// Load загружает конфигурацию из TOML-файла.
// Секреты читаются из окружения, предварительно подгружается .env рядом с файлом конфигурации.
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.Database.Password = os.Getenv(envDBPassword)
	cfg.Supabase.Key = os.Getenv(envSupabaseKey)
	cfg.Redis.Password = os.Getenv(envRedisPassword)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults заполняет незаданные значения
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "availability-service"
	}

	if c.Availability.SlotIntervalMinutes == 0 {
		c.Availability.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if c.Availability.Timezone == "" {
		c.Availability.Timezone = domain.DefaultTimezone
	}
	if c.Availability.BarberSearchConcurrency == 0 {
		c.Availability.BarberSearchConcurrency = 8
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}

	if c.Redis.ScheduleTTLSecs == 0 {
		c.Redis.ScheduleTTLSecs = 600
	}

	if c.Supabase.RequestTimeoutSecs == 0 {
		c.Supabase.RequestTimeoutSecs = 5
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Availability.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: availability.slot_interval_minutes must be positive, got %d",
			ErrInvalidConfig, c.Availability.SlotIntervalMinutes)
	}
	if c.Availability.BarberSearchConcurrency <= 0 {
		return fmt.Errorf("%w: availability.barber_search_concurrency must be positive, got %d",
			ErrInvalidConfig, c.Availability.BarberSearchConcurrency)
	}
	if _, err := c.Availability.Location(); err != nil {
		return fmt.Errorf("%w: availability.timezone %q: %v", ErrInvalidConfig, c.Availability.Timezone, err)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageDriverSupabase:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return fmt.Errorf("%w: supabase.url and %s are required for supabase storage", ErrInvalidConfig, envSupabaseKey)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
