package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK = 200

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization   = "Authorization"
	HeaderAccept          = "Accept"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentType     = "Content-Type"
	HeaderXRequestID      = "X-Request-Id"
	HeaderXCSRFToken      = "X-CSRF-Token"
	HeaderLink            = "Link"
)

const (
	StrGzip     = "gzip"
	StrBr       = "br"
	StrIdentity = "identity"
)

const (
	AuthorizationBearerFormat = "Bearer %s"
)
