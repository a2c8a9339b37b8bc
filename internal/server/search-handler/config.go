// internal/server/search-handler/config.go
package searchhandler

import (
	"time"

	"bookcafe-search/internal/common/config"
)

const (
	DefaultAIAnalysis      = "AI 분석 기능이 비활성화되었습니다. 검색 결과만 표시합니다."
	DefaultDetailKeyPrefix = "bookstore:detail:"
)

type Config struct {
	AIAnalysis      string
	DetailCacheTTL  time.Duration
	DetailKeyPrefix string
	AllowedOrigins  []string
}

func LoadConfig() *Config {
	return &Config{
		AIAnalysis:      DefaultAIAnalysis,
		DetailCacheTTL:  time.Hour,
		DetailKeyPrefix: DefaultDetailKeyPrefix,
	}
}

func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg.Redis.DetailCacheTTL > 0 {
		c.DetailCacheTTL = time.Duration(cfg.Redis.DetailCacheTTL) * time.Second
	}
	c.AllowedOrigins = cfg.CORS.AllowedOrigins
	return c
}
