package requests

// PageRequest is the normalized pagination intent of a client request. Every
// field except Filters is forwarded to the submissions API.
type PageRequest struct {
	Limit           int    `json:"limit" validate:"required,gte=1"`
	Offset          int    `json:"offset" validate:"gte=0"`
	AfterDate       string `json:"afterDate"`
	BeforeDate      string `json:"beforeDate"`
	Status          string `json:"status" validate:"required"`
	IncludeEditLink bool   `json:"includeEditLink"`
	Sort            string `json:"sort" validate:"oneof=asc desc"`

	// Filters is the raw JSON filter expression, empty when absent.
	Filters string `json:"-"`
}

// HasFilters reports whether the client sent a filter expression at all.
// A literal JSON null counts as absent.
func (p PageRequest) HasFilters() bool {
	return p.Filters != "" && p.Filters != "null"
}

// WithLimit returns a copy of the request asking for a different page size.
func (p PageRequest) WithLimit(limit int) *PageRequest {
	p.Limit = limit
	return &p
}
