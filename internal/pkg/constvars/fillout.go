package constvars

// MaxUpstreamPageLimit is the largest page the submissions API hands out. A
// filtered request always asks for this many candidates.
const MaxUpstreamPageLimit = 150

const (
	FilloutDefaultBaseURL         = "https://api.fillout.com/v1/api/forms/"
	FilloutDefaultSubmissionsPath = "/submissions"
	FilloutUpstreamName           = "fillout"
	ResourceSubmissions           = "submissions"
)

const (
	ConditionEquals       = "equals"
	ConditionDoesNotEqual = "does_not_equal"
	ConditionGreaterThan  = "greater_than"
	ConditionLessThan     = "less_than"
)

const (
	FilterMatchModeLiteral = "literal"
	FilterMatchModeStrict  = "strict"

	FilterPaginationModeLegacy = "legacy"
	FilterPaginationModeAlways = "always"

	FilterParseErrorPolicyDegrade = "degrade"
	FilterParseErrorPolicyReject  = "reject"
)
