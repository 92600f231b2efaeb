package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	CORS     CORSConfig
	Matching MatchingConfig
	Analysis AnalysisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	Debug       bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// Enabled reports whether enough settings are present to dial Postgres.
// Without them the server falls back to the in-memory catalog.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUser != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}

type CORSConfig struct {
	AllowOrigins []string
}

type MatchingConfig struct {
	MinScore          float64
	DetailConcurrency int
}

type AnalysisConfig struct {
	MaxUploadBytes int64
	CacheTTL       time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidValue       = errors.New("invalid configuration value")
)

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// Load reads configuration from the environment only.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from an optional file (yaml, toml, json or .env) with
// environment variables taking precedence over file values.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if p := strings.TrimSpace(path); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", p, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_connect_timeout", 5*time.Second)
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_ttl", 600*time.Second)
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("gemini_timeout", 60*time.Second)
	v.SetDefault("cors_allow_origins", strings.Join(defaultCORSOrigins, ","))
	v.SetDefault("match_min_score", 0.0)
	v.SetDefault("match_detail_concurrency", 8)
	v.SetDefault("analysis_max_upload_bytes", int64(10<<20))
	v.SetDefault("analysis_cache_ttl", 24*time.Hour)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, strings.ToUpper(key))
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("app_name"),
		Environment: req("app_env"),
		HTTPPort:    req("http_port"),
		LogJSON:     v.GetBool("log_json"),
		Debug:       v.GetBool("debug"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("db_host"),
		DBPort:                opt("db_port"),
		DBName:                opt("db_name"),
		DBUser:                opt("db_user"),
		DBPassword:            v.GetString("db_password"),
		DBSSLMode:             opt("db_ssl_mode"),
		ConnectTimeout:        v.GetDuration("db_connect_timeout"),
		PoolMaxConns:          v.GetInt32("db_pool_max_conns"),
		PoolMinConns:          v.GetInt32("db_pool_min_conns"),
		PoolMaxConnLifetime:   v.GetDuration("db_pool_max_conn_lifetime"),
		PoolMaxConnIdleTime:   v.GetDuration("db_pool_max_conn_idle_time"),
		PoolHealthCheckPeriod: v.GetDuration("db_pool_health_check_period"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("redis_host"),
		Port:     opt("redis_port"),
		Password: v.GetString("redis_password"),
		DB:       v.GetInt("redis_db"),
		TTL:      v.GetDuration("redis_ttl"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:  opt("gemini_api_key"),
		Model:   opt("gemini_model"),
		Timeout: v.GetDuration("gemini_timeout"),
	}

	cfg.CORS = CORSConfig{AllowOrigins: splitList(v.GetString("cors_allow_origins"))}

	cfg.Matching = MatchingConfig{
		MinScore:          v.GetFloat64("match_min_score"),
		DetailConcurrency: v.GetInt("match_detail_concurrency"),
	}

	cfg.Analysis = AnalysisConfig{
		MaxUploadBytes: v.GetInt64("analysis_max_upload_bytes"),
		CacheTTL:       v.GetDuration("analysis_cache_ttl"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Matching.MinScore < 0 || cfg.Matching.MinScore > 1 {
		return Config{}, fmt.Errorf("%w: MATCH_MIN_SCORE must be within [0,1], got %v", errInvalidValue, cfg.Matching.MinScore)
	}
	if cfg.Matching.DetailConcurrency <= 0 {
		cfg.Matching.DetailConcurrency = 1
	}
	if cfg.Analysis.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("%w: ANALYSIS_MAX_UPLOAD_BYTES must be positive", errInvalidValue)
	}
	for _, origin := range cfg.CORS.AllowOrigins {
		if origin == "*" {
			return Config{}, fmt.Errorf("%w: CORS_ALLOW_ORIGINS must list explicit origins, \"*\" cannot be combined with credentials", errInvalidValue)
		}
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = append([]string(nil), defaultCORSOrigins...)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
