package filteredResponses

import (
	"context"
	"errors"
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/exceptions"
	"formfillout-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FilteredResponseController struct {
	Log                     *zap.Logger
	FilteredResponseUsecase FilteredResponseUsecase
	InternalConfig          *config.InternalConfig
}

func NewFilteredResponseController(logger *zap.Logger, filteredResponseUsecase FilteredResponseUsecase, internalConfig *config.InternalConfig) *FilteredResponseController {
	return &FilteredResponseController{
		Log:                     logger,
		FilteredResponseUsecase: filteredResponseUsecase,
		InternalConfig:          internalConfig,
	}
}

func (ctrl *FilteredResponseController) FindFilteredResponses(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, constvars.URLParamFormID)
	request := utils.BuildPageRequest(r)

	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.FilteredResponseUsecase.FindFilteredResponses(ctx, formID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
