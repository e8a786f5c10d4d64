package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FRANCHISE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Resilience   ResilienceConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Resilience.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FRANCHISE_APP_ENV" default:"dev"`
	Port         string `envconfig:"FRANCHISE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FRANCHISE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRANCHISE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"FRANCHISE_DB_DSN"`

	Host     string `envconfig:"FRANCHISE_DB_HOST"`
	Port     int    `envconfig:"FRANCHISE_DB_PORT" default:"5432"`
	User     string `envconfig:"FRANCHISE_DB_USER"`
	Password string `envconfig:"FRANCHISE_DB_PASSWORD"`
	Name     string `envconfig:"FRANCHISE_DB_NAME"`
	SSLMode  string `envconfig:"FRANCHISE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FRANCHISE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FRANCHISE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FRANCHISE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FRANCHISE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	var missing []string
	for name, value := range map[string]string{
		"FRANCHISE_DB_HOST": db.Host,
		"FRANCHISE_DB_USER": db.User,
		"FRANCHISE_DB_NAME": db.Name,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete: set FRANCHISE_DB_DSN or %s", strings.Join(missing, ", "))
	}

	db.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
	return nil
}

// ResilienceConfig drives the shared policy protecting every database call.
// Defaults mirror the values the service has always run with: 2s call
// deadline, 25 concurrent permits, a 5-outcome window tripping at 50%, a 15s
// open cooldown, and 3 half-open probes.
type ResilienceConfig struct {
	Timeout        time.Duration `envconfig:"FRANCHISE_RESILIENCE_TIMEOUT" default:"2s"`
	MaxConcurrent  int           `envconfig:"FRANCHISE_RESILIENCE_MAX_CONCURRENT" default:"25"`
	WindowSize     int           `envconfig:"FRANCHISE_RESILIENCE_WINDOW_SIZE" default:"5"`
	FailureRatio   float64       `envconfig:"FRANCHISE_RESILIENCE_FAILURE_RATIO" default:"0.5"`
	OpenCooldown   time.Duration `envconfig:"FRANCHISE_RESILIENCE_OPEN_COOLDOWN" default:"15s"`
	HalfOpenProbes int           `envconfig:"FRANCHISE_RESILIENCE_HALF_OPEN_PROBES" default:"3"`
}

func (r ResilienceConfig) validate() error {
	if r.Timeout <= 0 {
		return fmt.Errorf("resilience timeout must be positive, got %s", r.Timeout)
	}
	if r.MaxConcurrent <= 0 {
		return fmt.Errorf("resilience max concurrent must be positive, got %d", r.MaxConcurrent)
	}
	if r.WindowSize <= 0 {
		return fmt.Errorf("resilience window size must be positive, got %d", r.WindowSize)
	}
	if r.FailureRatio <= 0 || r.FailureRatio > 1 {
		return fmt.Errorf("resilience failure ratio must be in (0, 1], got %v", r.FailureRatio)
	}
	if r.HalfOpenProbes <= 0 {
		return fmt.Errorf("resilience half-open probes must be positive, got %d", r.HalfOpenProbes)
	}
	return nil
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FRANCHISE_AUTO_MIGRATE" default:"false"`
}
