package utils

import (
	"errors"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/responses"
	"formfillout-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildJSONResponse writes data as the whole body, without the success
// envelope, for endpoints mirroring an upstream contract.
func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil && exposeErrorDetails() {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// exposeErrorDetails reports whether error bodies carry dev messages and
// locations. APP_EXPOSE_ERROR_DETAILS overrides the per-environment default.
func exposeErrorDetails() bool {
	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	return GetEnvBool("APP_EXPOSE_ERROR_DETAILS", appEnvironment != constvars.AppEnvProduction)
}
