package responsefilter

import (
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/fillout_dto"
)

type PaginationMode string

const (
	// PaginateLegacy slices only when the limit differs from the upstream
	// maximum and the offset is non-zero.
	PaginateLegacy PaginationMode = constvars.FilterPaginationModeLegacy
	// PaginateAlways slices every filtered result by limit and offset.
	PaginateAlways PaginationMode = constvars.FilterPaginationModeAlways
)

func ParsePaginationMode(mode string) PaginationMode {
	if PaginationMode(mode) == PaginateAlways {
		return PaginateAlways
	}
	return PaginateLegacy
}

// Options selects the matching and slicing rules of Run.
type Options struct {
	MatchMode      MatchMode
	PaginationMode PaginationMode
}

// PageCount is the current page number for the requested window, not the
// number of pages available.
func PageCount(limit, offset int) int {
	if limit <= 0 {
		return 1
	}
	pages := offset/limit + 1
	if offset%limit != 0 {
		pages++
	}
	return pages
}

// Paginate re-slices a filtered result with the client's limit and offset and
// recomputes the page count. The input result is not modified.
func Paginate(result *fillout_dto.PagedResult, limit, offset int, mode PaginationMode) *fillout_dto.PagedResult {
	paged := result.Clone()
	if paged == nil {
		paged = &fillout_dto.PagedResult{Responses: []fillout_dto.Response{}}
	}

	if shouldSlice(limit, offset, mode) {
		paged.Responses = window(paged.Responses, limit, offset)
	}

	paged.PageCount = PageCount(limit, offset)
	return paged
}

// Run filters and then re-paginates one upstream page.
func Run(result *fillout_dto.PagedResult, expr Expression, limit, offset int, opts Options) *fillout_dto.PagedResult {
	filtered := Apply(result, expr, opts.MatchMode)
	return Paginate(filtered, limit, offset, opts.PaginationMode)
}

func shouldSlice(limit, offset int, mode PaginationMode) bool {
	if mode == PaginateAlways {
		return true
	}
	return limit != constvars.MaxUpstreamPageLimit && offset != 0
}

func window(responses []fillout_dto.Response, limit, offset int) []fillout_dto.Response {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(responses) {
		start = len(responses)
	}
	end := len(responses)
	if limit >= 0 && limit < end-start {
		end = start + limit
	}
	return responses[start:end]
}
