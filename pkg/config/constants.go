package config

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "STOREPULSE_APP_ENV"
	EnvPort   = "STOREPULSE_APP_PORT"

	EnvDBDSN  = "STOREPULSE_DB_DSN"
	EnvDBHost = "STOREPULSE_DB_HOST"
	EnvDBUser = "STOREPULSE_DB_USER"
	EnvDBName = "STOREPULSE_DB_NAME"

	EnvRedisURL = "STOREPULSE_REDIS_URL"

	EnvJWTSecret              = "STOREPULSE_JWT_SECRET"
	EnvJWTIssuer              = "STOREPULSE_JWT_ISSUER"
	EnvJWTExpMins             = "STOREPULSE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "STOREPULSE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
