package config

// EnvPrefix is passed to envconfig; keys carry the full NOSH_ prefix in their
// tags, so the prefix itself stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv    = "NOSH_APP_ENV"
	EnvPort      = "NOSH_APP_PORT"
	EnvDBDSN     = "NOSH_DB_DSN"
	EnvDBHost    = "NOSH_DB_HOST"
	EnvDBUser    = "NOSH_DB_USER"
	EnvDBName    = "NOSH_DB_NAME"
	EnvRedisURL  = "NOSH_REDIS_URL"
	EnvJWTSecret = "NOSH_JWT_SECRET"
	EnvJWTIssuer = "NOSH_JWT_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
