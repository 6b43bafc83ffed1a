package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Itinerary ItineraryConfig `yaml:"itinerary"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Export    ExportConfig    `yaml:"export"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas with blanks dropped.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas with blanks dropped.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas with blanks dropped.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"5"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"travelplan"`
}

// RedisConfig holds settings of the optional itinerary view cache.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"REDIS_ENABLED"       env-default:"false"`
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"          env-default:"localhost:6379"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"2s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"500ms"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"500ms"`
	ViewTTL      time.Duration `yaml:"view_ttl"      env:"REDIS_VIEW_TTL"      env-default:"5m"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the
// account service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"travelplan"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// ItineraryConfig holds per-owner limits of the itinerary service.
type ItineraryConfig struct {
	MaxItinerariesPerOwner int `yaml:"max_itineraries_per_owner" env:"ITINERARY_MAX_PER_OWNER"      env-default:"200"`
	MaxItemsPerItinerary   int `yaml:"max_items_per_itinerary"   env:"ITINERARY_MAX_ITEMS"          env-default:"500"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATELIMIT_ENABLED"             env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATELIMIT_REQUESTS_PER_SECOND" env-default:"10"`
	Burst             int           `yaml:"burst"               env:"RATELIMIT_BURST"               env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATELIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"RATELIMIT_IDLE_TIMEOUT"        env-default:"10m"`
}

// ExportConfig holds calendar and PDF export settings.
type ExportConfig struct {
	ShareBaseURL string `yaml:"share_base_url" env:"EXPORT_SHARE_BASE_URL" env-default:"http://localhost:3000/travel-plans"`
	ProductID    string `yaml:"product_id"     env:"EXPORT_PRODUCT_ID"     env-default:"-//travelplan//itinerary//EN"`
}

// ShareURL returns the public URL of an itinerary, used in exports.
func (c ExportConfig) ShareURL(itineraryID string) string {
	return strings.TrimRight(c.ShareBaseURL, "/") + "/" + itineraryID
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
