package responsefilter

import (
	"formfillout-service/internal/pkg/constvars"
	"formfillout-service/internal/pkg/fillout_dto"
)

type MatchMode string

const (
	// MatchLiteral keeps a response when the answers satisfying any clause
	// number exactly as many as the clauses.
	MatchLiteral MatchMode = constvars.FilterMatchModeLiteral
	// MatchStrict keeps a response when every clause is satisfied by at least
	// one of its answers.
	MatchStrict MatchMode = constvars.FilterMatchModeStrict
)

func ParseMatchMode(mode string) MatchMode {
	if MatchMode(mode) == MatchStrict {
		return MatchStrict
	}
	return MatchLiteral
}

// Matches evaluates the clause against a single answer.
func (c Clause) Matches(answer fillout_dto.Answer) bool {
	if answer.QuestionID != c.ID {
		return false
	}

	switch c.Condition {
	case constvars.ConditionEquals:
		return strictEquals(answer.Value, c.Value)
	case constvars.ConditionDoesNotEqual:
		return !strictEquals(answer.Value, c.Value)
	case constvars.ConditionGreaterThan:
		cmp, ok := order(answer.Value, c.Value)
		return ok && cmp > 0
	case constvars.ConditionLessThan:
		cmp, ok := order(answer.Value, c.Value)
		return ok && cmp < 0
	default:
		return false
	}
}

// MatchesAny reports whether at least one clause accepts the answer.
func (e Expression) MatchesAny(answer fillout_dto.Answer) bool {
	for _, clause := range e {
		if clause.Matches(answer) {
			return true
		}
	}
	return false
}

// Apply returns a new result holding only the responses the expression keeps.
// The input result is not modified.
func Apply(result *fillout_dto.PagedResult, expr Expression, mode MatchMode) *fillout_dto.PagedResult {
	filtered := result.Clone()
	if filtered == nil {
		filtered = &fillout_dto.PagedResult{}
	}

	survivors := make([]fillout_dto.Response, 0, len(filtered.Responses))
	for _, response := range filtered.Responses {
		matched := matchingAnswers(response, expr)
		if keepResponse(response, matched, expr, mode) {
			survivors = append(survivors, response.WithQuestions(matched))
		}
	}

	filtered.Responses = survivors
	filtered.TotalResponses = len(survivors)
	return filtered
}

func matchingAnswers(response fillout_dto.Response, expr Expression) []fillout_dto.Answer {
	matched := make([]fillout_dto.Answer, 0, len(expr))
	for _, answer := range response.Questions {
		if expr.MatchesAny(answer) {
			matched = append(matched, answer)
		}
	}
	return matched
}

func keepResponse(response fillout_dto.Response, matched []fillout_dto.Answer, expr Expression, mode MatchMode) bool {
	if mode != MatchStrict {
		return len(matched) == len(expr)
	}

	for _, clause := range expr {
		satisfied := false
		for _, answer := range response.Questions {
			if clause.Matches(answer) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
