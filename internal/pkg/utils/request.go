package utils

import (
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildPageRequest normalizes the query of a filteredResponses call. Malformed
// or out of range numbers fall back to their defaults instead of failing.
func BuildPageRequest(r *http.Request) *requests.PageRequest {
	query := r.URL.Query()

	limit, err := strconv.Atoi(query.Get(constvars.URLQueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultPageLimit
	}

	offset, err := strconv.Atoi(query.Get(constvars.URLQueryParamOffset))
	if err != nil || offset < 0 {
		offset = constvars.DefaultPageOffset
	}

	status := query.Get(constvars.URLQueryParamStatus)
	if status == "" {
		status = constvars.DefaultSubmissionState
	}

	sort := constvars.SortAscending
	if query.Get(constvars.URLQueryParamSort) == constvars.SortDescending {
		sort = constvars.SortDescending
	}

	return &requests.PageRequest{
		Limit:           limit,
		Offset:          offset,
		AfterDate:       query.Get(constvars.URLQueryParamAfterDate),
		BeforeDate:      query.Get(constvars.URLQueryParamBeforeDate),
		Status:          status,
		IncludeEditLink: query.Get(constvars.URLQueryParamIncludeEditLink) == "true",
		Sort:            sort,
		Filters:         strings.TrimSpace(query.Get(constvars.URLQueryParamFilters)),
	}
}
