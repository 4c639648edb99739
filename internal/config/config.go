package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	GRPC     GRPCConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls HTTP server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// GRPCConfig controls the RPC listener. TLS material is optional; when the
// certificate pair is absent the server runs plaintext (development only).
type GRPCConfig struct {
	Host         string
	Port         string
	TLSCertFile  string
	TLSKeyFile   string
	ClientCAFile string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines how bearer tokens are resolved to permission levels.
// Mode "creds" queries the external credential service; mode "static"
// validates locally signed tokens carrying the level as a claim.
type AuthConfig struct {
	Mode                string
	CredsAPIURL         string
	CredsTimeoutSeconds int
	JWTSecret           string
	CacheTTLSeconds     int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "worker-directory"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		GRPC: GRPCConfig{
			Host:         getEnv("GRPC_HOST", "0.0.0.0"),
			Port:         getEnv("GRPC_PORT", "9090"),
			TLSCertFile:  os.Getenv("GRPC_TLS_CERT_FILE"),
			TLSKeyFile:   os.Getenv("GRPC_TLS_KEY_FILE"),
			ClientCAFile: os.Getenv("GRPC_TLS_CLIENT_CA_FILE"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			Mode:                getEnv("AUTH_MODE", "creds"),
			CredsAPIURL:         getEnv("CREDS_API_URL", "http://creds-api"),
			CredsTimeoutSeconds: getEnvAsInt("CREDS_TIMEOUT_SECONDS", 5),
			JWTSecret:           getEnv("AUTH_JWT_SECRET", "dev-secret"),
			CacheTTLSeconds:     getEnvAsInt("AUTH_CACHE_TTL_SECONDS", 0),
		},
	}

	if cfg.Auth.Mode != "creds" && cfg.Auth.Mode != "static" {
		return nil, fmt.Errorf("invalid AUTH_MODE: %q", cfg.Auth.Mode)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Addr returns the RPC bind address.
func (g GRPCConfig) Addr() string {
	return fmt.Sprintf("%s:%s", g.Host, g.Port)
}

// TLSEnabled reports whether server TLS material was provided.
func (g GRPCConfig) TLSEnabled() bool {
	return g.TLSCertFile != "" && g.TLSKeyFile != ""
}

// CredsTimeout returns the credential lookup timeout.
func (a AuthConfig) CredsTimeout() time.Duration {
	if a.CredsTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(a.CredsTimeoutSeconds) * time.Second
}

// CacheTTL returns the token cache TTL; zero disables caching.
func (a AuthConfig) CacheTTL() time.Duration {
	if a.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(a.CacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
