package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Salon          SalonConfig          `toml:"salon"`
	Twilio         TwilioConfig         `toml:"twilio"`
	Email          EmailConfig          `toml:"email"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
}

// ServerConfig настройки HTTP-сервера
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

// SalonConfig данные салона, используются в уведомлениях
type SalonConfig struct {
	Name          string `toml:"name"`
	Timezone      string `toml:"timezone"`
	NotifyTimeout int    `toml:"notify_timeout"` // таймаут одной попытки уведомления, секунды
}

// TwilioConfig настройки WhatsApp-уведомлений через Twilio.
// Секция опциональна: при отсутствии учетных данных уведомления отключаются.
type TwilioConfig struct {
	AccountSID   string `toml:"account_sid"`
	AuthToken    string `toml:"auth_token"`
	WhatsAppFrom string `toml:"whatsapp_from"` // например, "whatsapp:+14155238886"
	WhatsAppTo   string `toml:"whatsapp_to"`
}

// IsConfigured возвращает true, если заполнены все поля для отправки
func (c TwilioConfig) IsConfigured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppFrom != "" && c.WhatsAppTo != ""
}

// EmailConfig настройки SMTP. Секция опциональна.
type EmailConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	From       string `toml:"from"`
	OperatorTo string `toml:"operator_to"`
}

// IsConfigured возвращает true, если SMTP настроен
func (c EmailConfig) IsConfigured() bool {
	return c.Host != "" && c.User != "" && c.Password != "" && c.OperatorTo != ""
}

// GoogleCalendarConfig настройки сервисного аккаунта Google Calendar. Секция опциональна.
type GoogleCalendarConfig struct {
	CalendarID          string `toml:"calendar_id"`
	ServiceAccountEmail string `toml:"service_account_email"`
	PrivateKey          string `toml:"private_key"`
}

// IsConfigured возвращает true, если сервисный аккаунт настроен
func (c GoogleCalendarConfig) IsConfigured() bool {
	return c.CalendarID != "" && c.ServiceAccountEmail != "" && c.PrivateKey != ""
}

// Load читает и валидирует конфигурацию из toml-файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "ynd-booking-service",
		},
		Salon: SalonConfig{
			Name:          "YaDay Nail Designer",
			Timezone:      "Europe/Madrid",
			NotifyTimeout: 30,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Database.User == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database user and dbname are required")
	}

	return cfg, nil
}
