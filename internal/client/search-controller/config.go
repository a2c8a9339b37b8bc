// internal/client/search-controller/config.go
package searchcontroller

import (
	"time"

	"bookcafe-search/internal/common/config"
)

type Config struct {
	Endpoint            string
	Timeout             time.Duration
	ShowDataSourceBadge bool
}

func LoadConfig() *Config {
	return &Config{
		Endpoint:            "http://localhost:5000",
		Timeout:             30 * time.Second,
		ShowDataSourceBadge: true,
	}
}

// FromAppConfig maps the client section of the shared configuration.
func FromAppConfig(cfg config.ClientConfig) *Config {
	c := LoadConfig()
	if cfg.Endpoint != "" {
		c.Endpoint = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		c.Timeout = config.GetDuration(cfg.Timeout)
	}
	c.ShowDataSourceBadge = cfg.ShowDataSourceBadge
	return c
}
