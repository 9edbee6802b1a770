package constvars

// Validation messages for clients, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUpstreamUnavailable           = "the submissions service is unavailable, please try again later"
	ErrClientInvalidFilters                = "filters must be a JSON array of {id, condition, value} objects"
	ErrClientFormIDRequired                = "form id is required"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Upstream messages
	ErrDevUpstreamStatus           = "unexpected status code %d from %s"
	ErrDevUpstreamMalformedBody    = "malformed %s body from upstream"
	ErrDevUpstreamDecodeResponse   = "failed to decode %s response from upstream"
	ErrDevUpstreamDecompress       = "failed to decompress %s body from upstream"
	ErrDevUpstreamCircuitOpen      = "circuit breaker for %s is open"
	ErrDevUpstreamThrottleCanceled = "waiting for %s rate limiter canceled"

	// Filter messages
	ErrDevInvalidFilterExpression = "invalid filter expression"
	ErrDevFormIDMissing           = "form id URL param is empty"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
