package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
	"github.com/dmitrijs2005/jobmatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so they can be written as "3s" or as nanoseconds.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	NotificationsURL    string         `json:"notifications_url"`
	StoreBackend        string         `json:"store_backend"`
	StorePath           string         `json:"store_path"`
	RedisURL            string         `json:"redis_url"`
	ExpiryMargin        timex.Duration `json:"expiry_margin"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	RefreshTimeout      timex.Duration `json:"refresh_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogLevel            string         `json:"log_level"`
	LogBackend          string         `json:"log_backend"`
}

// parseJson overlays Config with the non-empty values of the JSON file passed
// via -c or -config. Without the flag nothing happens. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.NotificationsURL, jc.NotificationsURL)
	setString(&cfg.StoreBackend, jc.StoreBackend)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setDuration(&cfg.ExpiryMargin, jc.ExpiryMargin)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.RefreshTimeout, jc.RefreshTimeout)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
