package constvars

const (
	URLParamFormID = "form_id"
)

const (
	URLQueryParamLimit           = "limit"
	URLQueryParamOffset          = "offset"
	URLQueryParamAfterDate       = "afterDate"
	URLQueryParamBeforeDate      = "beforeDate"
	URLQueryParamStatus          = "status"
	URLQueryParamIncludeEditLink = "includeEditLink"
	URLQueryParamSort            = "sort"
	URLQueryParamFilters         = "filters"
)

const (
	DefaultPageLimit       = 150
	DefaultPageOffset      = 0
	DefaultSubmissionState = "finished"

	SortAscending  = "asc"
	SortDescending = "desc"
)
