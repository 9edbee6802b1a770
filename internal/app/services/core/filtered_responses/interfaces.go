package filteredResponses

import (
	"context"
	"formfillout-service/internal/pkg/dto/requests"
	"formfillout-service/internal/pkg/fillout_dto"
)

type FilteredResponseUsecase interface {
	FindFilteredResponses(ctx context.Context, formID string, request *requests.PageRequest) (*fillout_dto.PagedResult, error)
}
