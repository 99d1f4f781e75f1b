package config

import (
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/validation"
)

// Config holds runtime settings for the jobmatch CLI.
//
// Units: all intervals and timeouts are time.Duration values.
type Config struct {
	BaseURL          string `json:"base_url" env:"JOBMATCH_BASE_URL" validate:"required,url"`
	NotificationsURL string `json:"notifications_url" env:"JOBMATCH_NOTIFICATIONS_URL" validate:"omitempty,url"`

	StoreBackend    string `json:"store_backend" env:"JOBMATCH_STORE_BACKEND" validate:"oneof=sqlite memory redis"`
	StorePath       string `json:"store_path" env:"JOBMATCH_STORE_PATH" validate:"required_if=StoreBackend sqlite"`
	RedisURL        string `json:"redis_url" env:"JOBMATCH_REDIS_URL" validate:"required_if=StoreBackend redis"`
	StorePassphrase string `json:"-" env:"JOBMATCH_STORE_PASSPHRASE"`

	ExpiryMargin        time.Duration `json:"expiry_margin" env:"JOBMATCH_EXPIRY_MARGIN" validate:"gte=0"`
	RequestTimeout      time.Duration `json:"request_timeout" env:"JOBMATCH_REQUEST_TIMEOUT" validate:"gt=0"`
	RefreshTimeout      time.Duration `json:"refresh_timeout" env:"JOBMATCH_REFRESH_TIMEOUT" validate:"gt=0"`
	OnlineCheckInterval time.Duration `json:"online_check_interval" env:"JOBMATCH_ONLINE_CHECK_INTERVAL" validate:"gt=0"`

	LogLevel   string `json:"log_level" env:"JOBMATCH_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogBackend string `json:"log_backend" env:"JOBMATCH_LOG_BACKEND" validate:"oneof=slog logrus"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api"
	c.NotificationsURL = ""
	c.StoreBackend = "sqlite"
	c.StorePath = "jobmatch.db"
	c.RedisURL = "redis://localhost:6379/0"
	c.ExpiryMargin = 30 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.RefreshTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
