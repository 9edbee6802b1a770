package responsefilter

import (
	"errors"
	"fmt"
	"strings"

	"formfillout-service/internal/pkg/fillout_dto"
	"formfillout-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

var (
	ErrEmptyExpression = errors.New("filter expression has no clauses")
	ErrNonScalarValue  = errors.New("filter value must be a string, number or boolean")
)

// Clause is one condition of a filter expression.
type Clause struct {
	ID        string            `json:"id" validate:"required"`
	Condition string            `json:"condition" validate:"required"`
	Value     fillout_dto.Value `json:"value"`
}

func (c Clause) String() string {
	return fmt.Sprintf("%s %s %s", c.ID, c.Condition, c.Value.String())
}

// Expression is an ordered, non-empty list of clauses.
type Expression []Clause

func (e Expression) String() string {
	parts := make([]string, 0, len(e))
	for _, clause := range e {
		parts = append(parts, clause.String())
	}
	return strings.Join(parts, ", ")
}

// ParseError reports a filters parameter that is not a usable expression.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid filter expression %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes the JSON filters parameter. Unknown conditions are accepted
// and simply never match.
func Parse(raw string) (Expression, error) {
	var expr Expression
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &expr); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	if len(expr) == 0 {
		return nil, &ParseError{Raw: raw, Err: ErrEmptyExpression}
	}

	for i, clause := range expr {
		if err := utils.ValidateStruct(clause); err != nil {
			return nil, &ParseError{Raw: raw, Err: fmt.Errorf("clause %d: %w", i, err)}
		}
		if !clause.Value.IsScalar() {
			return nil, &ParseError{Raw: raw, Err: fmt.Errorf("clause %d: %w", i, ErrNonScalarValue)}
		}
	}

	return expr, nil
}
