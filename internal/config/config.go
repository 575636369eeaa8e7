package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// EnvPrefix префикс переменных окружения, например BARBER_DATABASE_HOST
const EnvPrefix = "BARBER"

// Config конфигурация сервиса
// Порядок источников: значения по умолчанию, config.toml, .env и переменные окружения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Events   EventsConfig   `toml:"events"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port" split_words:"true"`
	APIPrefix       string `toml:"api_prefix" split_words:"true"`
	ReadTimeout     int    `toml:"read_timeout" split_words:"true"`  // секунды
	WriteTimeout    int    `toml:"write_timeout" split_words:"true"` // секунды
	IdleTimeout     int    `toml:"idle_timeout" split_words:"true"`  // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout" split_words:"true"`
}

type DatabaseConfig struct {
	Host                string `toml:"host" split_words:"true"`
	Port                int    `toml:"port" split_words:"true"`
	User                string `toml:"user" split_words:"true"`
	Password            string `toml:"password" split_words:"true"`
	DBName              string `toml:"dbname" split_words:"true"`
	SSLMode             string `toml:"sslmode" split_words:"true"`
	MaxOpenConns        int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns        int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime     int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	QueryTimeoutSeconds int    `toml:"query_timeout_seconds" split_words:"true"`
	AutoMigrate         bool   `toml:"auto_migrate" split_words:"true"`
}

type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type ScheduleConfig struct {
	OpenTime            string `toml:"open_time" split_words:"true"`  // HH:MM
	CloseTime           string `toml:"close_time" split_words:"true"` // HH:MM
	SlotDurationMinutes int    `toml:"slot_duration_minutes" split_words:"true"`
	Timezone            string `toml:"timezone" split_words:"true"`
}

type EventsConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	URL      string `toml:"url" split_words:"true"`
	Exchange string `toml:"exchange" split_words:"true"`
	Timeout  int    `toml:"timeout" split_words:"true"` // секунды
}

// Load читает конфигурацию из файла path
// Отсутствующий файл не ошибка: тогда действуют значения по умолчанию и окружение
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// Незаданные переменные не трогают поля, прочитанные из файла
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:                "localhost",
			Port:                5432,
			User:                "postgres",
			DBName:              "barber",
			SSLMode:             "disable",
			MaxOpenConns:        10,
			MaxIdleConns:        5,
			ConnMaxLifetime:     300,
			QueryTimeoutSeconds: 5,
			AutoMigrate:         true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber_booking",
		},
		Schedule: ScheduleConfig{
			OpenTime:            domain.DefaultOpenTime,
			CloseTime:           domain.DefaultCloseTime,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			Timezone:            domain.DefaultTimezone,
		},
		Events: EventsConfig{
			Exchange: "barber.bookings",
			Timeout:  3,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Server.APIPrefix != "" && (!strings.HasPrefix(c.Server.APIPrefix, "/") || strings.HasSuffix(c.Server.APIPrefix, "/")) {
		return fmt.Errorf("config: server.api_prefix must start with / and not end with /: %q", c.Server.APIPrefix)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if c.Database.QueryTimeoutSeconds <= 0 {
		return fmt.Errorf("config: database.query_timeout_seconds must be positive: %d", c.Database.QueryTimeoutSeconds)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with /: %q", c.Metrics.Path)
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return errors.New("config: events.url is required when events are enabled")
	}
	if _, err := c.Schedule.SlotSchedule(); err != nil {
		return err
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// QueryTimeout ограничение на один запрос к хранилищу
func (d DatabaseConfig) QueryTimeout() time.Duration {
	return time.Duration(d.QueryTimeoutSeconds) * time.Second
}

// Location часовой пояс барбершопа
func (s ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: schedule.timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// SlotSchedule сетка слотов рабочего дня
func (s ScheduleConfig) SlotSchedule() (domain.SlotSchedule, error) {
	open, err := types.NewTimeStringFromString(s.OpenTime)
	if err != nil {
		return domain.SlotSchedule{}, fmt.Errorf("config: schedule.open_time: %w", err)
	}
	closing, err := types.NewTimeStringFromString(s.CloseTime)
	if err != nil {
		return domain.SlotSchedule{}, fmt.Errorf("config: schedule.close_time: %w", err)
	}
	if !open.IsBefore(closing) {
		return domain.SlotSchedule{}, fmt.Errorf("config: schedule.open_time %s must be before close_time %s", open, closing)
	}
	if s.SlotDurationMinutes <= 0 {
		return domain.SlotSchedule{}, fmt.Errorf("config: schedule.slot_duration_minutes must be positive: %d", s.SlotDurationMinutes)
	}

	loc, err := s.Location()
	if err != nil {
		return domain.SlotSchedule{}, err
	}

	return domain.SlotSchedule{
		OpenTime:            open,
		CloseTime:           closing,
		SlotDurationMinutes: s.SlotDurationMinutes,
		Location:            loc,
	}, nil
}
