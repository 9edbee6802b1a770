package filteredResponses

import (
	"context"
	"formfillout-service/internal/app/config"
	"formfillout-service/internal/app/contracts"
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/requests"
	"formfillout-service/internal/pkg/exceptions"
	"formfillout-service/internal/pkg/fillout_dto"
	"formfillout-service/internal/pkg/metrics"
	"formfillout-service/internal/pkg/responsefilter"
	"formfillout-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type filteredResponseUsecase struct {
	SubmissionClient contracts.SubmissionClient
	InternalConfig   *config.InternalConfig
	Options          responsefilter.Options
	Log              *zap.Logger
}

func NewFilteredResponseUsecase(
	submissionClient contracts.SubmissionClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) FilteredResponseUsecase {
	return &filteredResponseUsecase{
		SubmissionClient: submissionClient,
		InternalConfig:   internalConfig,
		Options: responsefilter.Options{
			MatchMode:      responsefilter.ParseMatchMode(internalConfig.Filter.MatchMode),
			PaginationMode: responsefilter.ParsePaginationMode(internalConfig.Filter.PaginationMode),
		},
		Log: logger,
	}
}

func (uc *filteredResponseUsecase) FindFilteredResponses(ctx context.Context, formID string, request *requests.PageRequest) (*fillout_dto.PagedResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("filteredResponseUsecase.FindFilteredResponses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, formID),
		zap.Int(constvars.LoggingLimitKey, request.Limit),
		zap.Int(constvars.LoggingOffsetKey, request.Offset),
		zap.String(constvars.LoggingFiltersKey, request.Filters),
	)

	if formID == "" {
		return nil, exceptions.ErrFormIDRequired(nil)
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("filteredResponseUsecase.FindFilteredResponses error validating page request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	if !request.HasFilters() {
		return uc.passthrough(ctx, requestID, formID, request, metrics.OutcomePassthrough)
	}

	expression, err := responsefilter.Parse(request.Filters)
	if err != nil {
		if uc.InternalConfig.Filter.ParseErrorPolicy == constvars.FilterParseErrorPolicyReject {
			metrics.FilterOutcomesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			uc.Log.Error("filteredResponseUsecase.FindFilteredResponses error parsing filters",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrInvalidFilter(err)
		}

		uc.Log.Warn("filteredResponseUsecase.FindFilteredResponses ignoring unparsable filters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.passthrough(ctx, requestID, formID, request, metrics.OutcomeDegraded)
	}

	page, err := uc.SubmissionClient.FindSubmissions(ctx, formID, request.WithLimit(constvars.MaxUpstreamPageLimit))
	if err != nil {
		metrics.FilterOutcomesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	result := responsefilter.Run(page, expression, request.Limit, request.Offset, uc.Options)
	metrics.FilterOutcomesTotal.WithLabelValues(metrics.OutcomeFiltered).Inc()
	metrics.FilterSurvivors.Observe(float64(result.TotalResponses))

	uc.Log.Info("filteredResponseUsecase.FindFilteredResponses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterClausesKey, expression.String()),
		zap.String(constvars.LoggingMatchModeKey, string(uc.Options.MatchMode)),
		zap.String(constvars.LoggingPaginationModeKey, string(uc.Options.PaginationMode)),
		zap.Int(constvars.LoggingTotalResponsesKey, result.TotalResponses),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.Responses)),
	)
	return result, nil
}

// passthrough serves the upstream page for the client's own pagination
// without touching it.
func (uc *filteredResponseUsecase) passthrough(ctx context.Context, requestID, formID string, request *requests.PageRequest, outcome string) (*fillout_dto.PagedResult, error) {
	page, err := uc.SubmissionClient.FindSubmissions(ctx, formID, request)
	if err != nil {
		metrics.FilterOutcomesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}
	metrics.FilterOutcomesTotal.WithLabelValues(outcome).Inc()

	uc.Log.Info("filteredResponseUsecase.FindFilteredResponses succeeded without filtering",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalResponsesKey, page.TotalResponses),
	)
	return page, nil
}
