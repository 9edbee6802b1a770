package routers

import (
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/responses"
	"formfillout-service/internal/pkg/utils"
	"net/http"
)

func healthCheck(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
			Environment: internalConfig.App.Env,
			Version:     internalConfig.App.Version,
		})
	}
}
