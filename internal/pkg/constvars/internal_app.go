package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "FLTR_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	RouteFilteredResponses = "/filteredResponses"
	RouteHealthCheck       = "/healthz"
	RouteMetrics           = "/metrics"
)
