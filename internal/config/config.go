package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	VenueService VenueServiceConfig `toml:"venue_service"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Calendar     CalendarConfig     `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// VenueServiceConfig настройки клиента VenueService
type VenueServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig геометрия календарной сетки
type CalendarConfig struct {
	WindowOpen       string `toml:"window_open"`         // начало рабочего окна, "HH:MM"
	WindowClose      string `toml:"window_close"`        // конец рабочего окна, "HH:MM"
	SlotMinutes      int    `toml:"slot_minutes"`        // шаг временных слотов (30 или 60)
	PixelsPerHour    int    `toml:"pixels_per_hour"`     // вертикальный масштаб недели/дня
	MinEventHeightPx int    `toml:"min_event_height_px"` // минимальная высота события
	MaxVisiblePerDay int    `toml:"max_visible_per_day"` // видимых событий в ячейке месяца
	ListWindowDays   int    `toml:"list_window_days"`    // окно списочного представления
}

// Load загружает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Calendar.WindowOpen == "" {
		c.Calendar.WindowOpen = domain.DefaultWindowOpen
	}
	if c.Calendar.WindowClose == "" {
		c.Calendar.WindowClose = domain.DefaultWindowClose
	}
	if c.Calendar.SlotMinutes == 0 {
		c.Calendar.SlotMinutes = domain.DefaultSlotMinutes
	}
	if c.Calendar.PixelsPerHour == 0 {
		c.Calendar.PixelsPerHour = domain.DefaultPixelsPerHour
	}
	if c.Calendar.MinEventHeightPx == 0 {
		c.Calendar.MinEventHeightPx = domain.DefaultMinEventHeightPx
	}
	if c.Calendar.MaxVisiblePerDay == 0 {
		c.Calendar.MaxVisiblePerDay = domain.DefaultMaxVisiblePerDay
	}
	if c.Calendar.ListWindowDays == 0 {
		c.Calendar.ListWindowDays = domain.DefaultListWindowDays
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) validate() error {
	open, err := types.NewTimeStringFromString(c.Calendar.WindowOpen)
	if err != nil {
		return fmt.Errorf("config: calendar.window_open: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(c.Calendar.WindowClose)
	if err != nil {
		return fmt.Errorf("config: calendar.window_close: %w", err)
	}
	if !open.IsBefore(closeAt) {
		return fmt.Errorf("config: calendar window must open before it closes (%s >= %s)",
			c.Calendar.WindowOpen, c.Calendar.WindowClose)
	}
	if c.Calendar.SlotMinutes <= 0 || c.Calendar.SlotMinutes > 60 {
		return fmt.Errorf("config: calendar.slot_minutes must be in (0, 60], got %d", c.Calendar.SlotMinutes)
	}
	return nil
}
