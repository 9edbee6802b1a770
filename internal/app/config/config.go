package config

import (
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("PORT", "3000"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1.0"),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			CorsAllowedOrigins:      utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
		},
		Fillout: Fillout{
			APIKey:                      utils.GetEnvString("API_KEY", ""),
			BaseUrl:                     utils.GetEnvString("FILLOUT_BASE_URL", constvars.FilloutDefaultBaseURL),
			SubmissionsPath:             utils.GetEnvString("FILLOUT_SUBMISSIONS_PATH", constvars.FilloutDefaultSubmissionsPath),
			HTTPTimeoutInSeconds:        utils.GetEnvInt("FILLOUT_HTTP_TIMEOUT_IN_SECONDS", 30),
			RetryMax:                    utils.GetEnvInt("FILLOUT_RETRY_MAX", 0),
			MaxRequestsPerSecond:        utils.GetEnvFloat("FILLOUT_MAX_REQUESTS_PER_SECOND", 5),
			BreakerMaxFailures:          utils.GetEnvInt("FILLOUT_BREAKER_MAX_FAILURES", 5),
			BreakerOpenTimeoutInSeconds: utils.GetEnvInt("FILLOUT_BREAKER_OPEN_TIMEOUT_IN_SECONDS", 30),
		},
		Filter: Filter{
			MatchMode:        utils.GetEnvString("FILTER_MATCH_MODE", constvars.FilterMatchModeLiteral),
			PaginationMode:   utils.GetEnvString("FILTER_PAGINATION_MODE", constvars.FilterPaginationModeLegacy),
			ParseErrorPolicy: utils.GetEnvString("FILTER_PARSE_ERROR_POLICY", constvars.FilterParseErrorPolicyDegrade),
		},
	}
}
