// internal/common/config/config.go
package config

// Config is the main application configuration struct, shared by the search client and server.
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Client       ClientConfig       `mapstructure:"client"`
	BookstoreAPI BookstoreAPIConfig `mapstructure:"bookstore_api"`
	Redis        RedisConfig        `mapstructure:"redis"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig configures the HTTP search endpoint.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// ClientConfig configures the search controller and its transport.
type ClientConfig struct {
	Endpoint            string `mapstructure:"endpoint"`
	Timeout             int    `mapstructure:"timeout"` // milliseconds
	ShowDataSourceBadge bool   `mapstructure:"show_data_source_badge"`
}

// BookstoreAPIConfig configures the culture open-data API behind POST /search.
type BookstoreAPIConfig struct {
	Source    string  `mapstructure:"source"` // "live" or "sample"
	BaseURL   string  `mapstructure:"base_url"`
	APIKey    string  `mapstructure:"api_key"`
	NumOfRows int     `mapstructure:"num_of_rows"`
	Timeout   int     `mapstructure:"timeout"` // milliseconds
	RPS       float64 `mapstructure:"rps"`
	Burst     int     `mapstructure:"burst"`
}

type RedisConfig struct {
	Address        string `mapstructure:"address"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	DetailCacheTTL int    `mapstructure:"detail_cache_ttl"` // seconds
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

const (
	SourceLive   = "live"
	SourceSample = "sample"
)
