package exceptions

import (
	"fmt"
	"formfillout-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrFormIDRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientFormIDRequired, constvars.ErrDevFormIDMissing)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Filter
	ErrInvalidFilter = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidFilters, constvars.ErrDevInvalidFilterExpression)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}

	// Upstream
	ErrUpstreamStatus = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, resource))
	}
	ErrUpstreamMalformedBody = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpstreamMalformedBody, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpstreamDecodeResponse, resource))
	}
	ErrDecompressResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpstreamDecompress, resource))
	}
	ErrUpstreamUnavailable = func(err error, upstream string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamCircuitOpen, upstream))
	}
	ErrUpstreamThrottle = func(err error, upstream string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamThrottleCanceled, upstream))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
