package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	GroupOrders  GroupOrdersConfig
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
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NOSH_APP_ENV" required:"true"`
	Port         string `envconfig:"NOSH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NOSH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NOSH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NOSH_DB_DSN"`
	Driver string `envconfig:"NOSH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"NOSH_DB_HOST"`
	LegacyPort     int    `envconfig:"NOSH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"NOSH_DB_USER"`
	LegacyPassword string `envconfig:"NOSH_DB_PASSWORD"`
	LegacyName     string `envconfig:"NOSH_DB_NAME"`
	LegacySSLMode  string `envconfig:"NOSH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NOSH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NOSH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NOSH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NOSH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NOSH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NOSH_REDIS_ADDR"`
	Password     string        `envconfig:"NOSH_REDIS_PASSWORD"`
	DB           int           `envconfig:"NOSH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NOSH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NOSH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NOSH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NOSH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NOSH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"NOSH_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"NOSH_JWT_ISSUER" required:"true"`
}

// GroupOrdersConfig carries the knobs for the shared-ordering lifecycle.
type GroupOrdersConfig struct {
	DefaultTTLHours  int    `envconfig:"NOSH_GROUP_ORDER_TTL_HOURS" default:"24"`
	ShareLinkTTLDays int    `envconfig:"NOSH_GROUP_ORDER_SHARE_TTL_DAYS" default:"30"`
	ShareBaseURL     string `envconfig:"NOSH_SHARE_BASE_URL" default:"https://cribnosh.app"`

	ShareViewRateLimit  int64         `envconfig:"NOSH_SHARE_VIEW_RATE_LIMIT" default:"60"`
	ShareViewRateWindow time.Duration `envconfig:"NOSH_SHARE_VIEW_RATE_WINDOW" default:"1m"`
}

// DefaultTTL returns the ordering-window TTL applied at creation.
func (g GroupOrdersConfig) DefaultTTL() time.Duration {
	if g.DefaultTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(g.DefaultTTLHours) * time.Hour
}

// ShareLinkTTL returns how long a share link stays viewable. Joins are still
// cut off by the ordering-window TTL.
func (g GroupOrdersConfig) ShareLinkTTL() time.Duration {
	if g.ShareLinkTTLDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(g.ShareLinkTTLDays) * 24 * time.Hour
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NOSH_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
