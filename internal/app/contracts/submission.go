package contracts

import (
	"context"
	"formfillout-service/internal/pkg/dto/requests"
	"formfillout-service/internal/pkg/fillout_dto"
)

type SubmissionClient interface {
	FindSubmissions(ctx context.Context, formID string, request *requests.PageRequest) (*fillout_dto.PagedResult, error)
}
