// internal/server/bookstore-api/config.go
package bookstoreapi

import (
	"time"

	"bookcafe-search/internal/common/config"
)

const (
	DefaultBaseURL   = "http://api.kcisa.kr/openapi/API_CIA_090/request"
	DefaultNumOfRows = 10
)

type Config struct {
	BaseURL   string
	APIKey    string
	NumOfRows int
	Timeout   time.Duration
	// RPS <= 0 disables throttling.
	RPS   float64
	Burst int
}

func LoadConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		NumOfRows: DefaultNumOfRows,
		Timeout:   10 * time.Second,
		RPS:       5,
		Burst:     5,
	}
}

func FromAppConfig(cfg config.BookstoreAPIConfig) *Config {
	c := LoadConfig()
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	c.APIKey = cfg.APIKey
	if cfg.NumOfRows > 0 {
		c.NumOfRows = cfg.NumOfRows
	}
	if cfg.Timeout > 0 {
		c.Timeout = config.GetDuration(cfg.Timeout)
	}
	c.RPS = cfg.RPS
	if cfg.Burst > 0 {
		c.Burst = cfg.Burst
	}
	return c
}
