package config

type InternalConfig struct {
	App     App     `mapstructure:"app"`
	Fillout Fillout `mapstructure:"fillout"`
	Filter  Filter  `mapstructure:"filter"`
}

type App struct {
	Env                     string `mapstructure:"env"`
	Port                    string `mapstructure:"port"`
	Version                 string `mapstructure:"version"`
	ShutdownTimeout         int    `mapstructure:"shutdown_timeout"`
	MaxRequests             int    `mapstructure:"max_requests"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	CorsAllowedOrigins      string `mapstructure:"cors_allowed_origins"`
}

// Fillout holds everything the submissions client needs. It is passed to the
// client explicitly instead of being read from the environment at call time.
type Fillout struct {
	APIKey                      string  `mapstructure:"api_key"`
	BaseUrl                     string  `mapstructure:"base_url"`
	SubmissionsPath             string  `mapstructure:"submissions_path"`
	HTTPTimeoutInSeconds        int     `mapstructure:"http_timeout_in_seconds"`
	RetryMax                    int     `mapstructure:"retry_max"`
	MaxRequestsPerSecond        float64 `mapstructure:"max_requests_per_second"`
	BreakerMaxFailures          int     `mapstructure:"breaker_max_failures"`
	BreakerOpenTimeoutInSeconds int     `mapstructure:"breaker_open_timeout_in_seconds"`
}

type Filter struct {
	MatchMode        string `mapstructure:"match_mode"`
	PaginationMode   string `mapstructure:"pagination_mode"`
	ParseErrorPolicy string `mapstructure:"parse_error_policy"`
}
