package config

import (
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	BaseData   BaseDataConfig   `yaml:"basedata"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-User,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"600"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig holds storage settings. DSN is required for the postgres driver.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds JWT validation settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"petcare"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// DictionaryConfig holds dictionary lookup settings.
type DictionaryConfig struct {
	CacheSize          int           `yaml:"cache_size"           env:"DICT_CACHE_SIZE"           env-default:"512"`
	CacheTTL           time.Duration `yaml:"cache_ttl"            env:"DICT_CACHE_TTL"            env-default:"10m"`
	CascadeKeysRaw     string        `yaml:"cascade_keys"         env:"DICT_CASCADE_KEYS"         env-default:"pet_breed=species"`
	DefaultCascadeKey  string        `yaml:"default_cascade_key"  env:"DICT_DEFAULT_CASCADE_KEY"  env-default:"species"`
	ValidateActiveOnly bool          `yaml:"validate_active_only" env:"DICT_VALIDATE_ACTIVE_ONLY" env-default:"false"`

	// CascadeKeys is parsed from CascadeKeysRaw during validation.
	CascadeKeys map[string]string `yaml:"-" env:"-"`
}

// BaseDataConfig holds versioning settings for base-data records.
type BaseDataConfig struct {
	RollbackMode     string `yaml:"rollback_mode"     env:"BASEDATA_ROLLBACK_MODE"     env-default:"compat"`
	ConcurrencyGuard string `yaml:"concurrency_guard" env:"BASEDATA_CONCURRENCY_GUARD" env-default:"optimistic"`
	ActorHeader      string `yaml:"actor_header"      env:"BASEDATA_ACTOR_HEADER"      env-default:"X-User"`
	ActorSource      string `yaml:"actor_source"      env:"BASEDATA_ACTOR_SOURCE"      env-default:"header"`
	DefaultActor     string `yaml:"default_actor"     env:"BASEDATA_DEFAULT_ACTOR"     env-default:"system"`
}

// Actor sources.
const (
	ActorSourceHeader    = "header"
	ActorSourcePrincipal = "principal"
)

// Mode returns the rollback mode as a domain value.
func (c BaseDataConfig) Mode() domain.RollbackMode {
	return domain.RollbackMode(c.RollbackMode)
}

// Guard returns the concurrency guard as a domain value.
func (c BaseDataConfig) Guard() domain.ConcurrencyGuard {
	return domain.ConcurrencyGuard(c.ConcurrencyGuard)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
