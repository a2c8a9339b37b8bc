// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultBookstoreBaseURL = "http://api.kcisa.kr/openapi/API_CIA_090/request"

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finalize(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finalize(v)
}

func finalize(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			// an unset variable clears the value so defaults and env overrides apply
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig fills secrets and endpoints from the well-known environment variables.
func overrideEmptyConfig(cfg *Config) {
	if cfg.BookstoreAPI.APIKey == "" {
		if val := os.Getenv("CULTURE_API_KEY"); val != "" {
			cfg.BookstoreAPI.APIKey = val
		}
	}
	if cfg.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Redis.Password = val
		}
	}
	if cfg.Client.Endpoint == "" {
		if val := os.Getenv("SEARCH_ENDPOINT"); val != "" {
			cfg.Client.Endpoint = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "bookcafe-search"
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":5000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	if cfg.Client.Endpoint == "" {
		cfg.Client.Endpoint = "http://localhost:5000"
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = 30000
	}

	if cfg.BookstoreAPI.BaseURL == "" {
		cfg.BookstoreAPI.BaseURL = defaultBookstoreBaseURL
	}
	if cfg.BookstoreAPI.NumOfRows == 0 {
		cfg.BookstoreAPI.NumOfRows = 10
	}
	if cfg.BookstoreAPI.Timeout == 0 {
		cfg.BookstoreAPI.Timeout = 10000
	}
	if cfg.BookstoreAPI.RPS == 0 {
		cfg.BookstoreAPI.RPS = 5
	}
	if cfg.BookstoreAPI.Burst == 0 {
		cfg.BookstoreAPI.Burst = 5
	}
	if cfg.BookstoreAPI.Source == "" {
		if cfg.BookstoreAPI.APIKey != "" {
			cfg.BookstoreAPI.Source = SourceLive
		} else {
			cfg.BookstoreAPI.Source = SourceSample
		}
	}

	if cfg.Redis.DetailCacheTTL == 0 {
		cfg.Redis.DetailCacheTTL = 3600
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	switch cfg.BookstoreAPI.Source {
	case SourceLive:
		if cfg.BookstoreAPI.APIKey == "" {
			return fmt.Errorf("bookstore_api.api_key is required when source is %q", SourceLive)
		}
	case SourceSample:
	default:
		return fmt.Errorf("bookstore_api.source must be %q or %q, got %q", SourceLive, SourceSample, cfg.BookstoreAPI.Source)
	}

	if cfg.BookstoreAPI.RPS < 0 || cfg.BookstoreAPI.Burst < 0 {
		return fmt.Errorf("bookstore_api.rps and bookstore_api.burst must not be negative")
	}

	if !strings.HasPrefix(cfg.Client.Endpoint, "http://") && !strings.HasPrefix(cfg.Client.Endpoint, "https://") {
		return fmt.Errorf("client.endpoint must be an http(s) URL, got %q", cfg.Client.Endpoint)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
