package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingFormIDKey          = "form_id"
	LoggingUpstreamUrlKey     = "upstream_url"
	LoggingQueryParamsKey     = "query_params"
	LoggingFiltersKey         = "filters"
	LoggingFilterClausesKey   = "filter_clauses"
	LoggingResponseLengthKey  = "response_length"
	LoggingTotalResponsesKey  = "total_responses"
	LoggingLimitKey           = "limit"
	LoggingOffsetKey          = "offset"
	LoggingMatchModeKey       = "match_mode"
	LoggingPaginationModeKey  = "pagination_mode"
	LoggingStatusCodeKey      = "status_code"
	LoggingContentEncodingKey = "content_encoding"
	LoggingBreakerStateKey    = "breaker_state"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingOperationKey       = "operation"
)
