package responsefilter

import (
	"formfillout-service/internal/pkg/fillout_dto"
)

// strictEquals never coerces: values of different kinds are unequal, and
// arrays or objects are unequal to everything.
func strictEquals(a, b fillout_dto.Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case fillout_dto.KindString:
		return a.Str == b.Str
	case fillout_dto.KindNumber:
		return a.Num == b.Num
	case fillout_dto.KindBool:
		return a.Bool == b.Bool
	case fillout_dto.KindNull, fillout_dto.KindUndefined:
		return true
	default:
		return false
	}
}

// order compares numbers with numbers and strings with strings. Any other pair
// is unordered and ok is false.
func order(a, b fillout_dto.Value) (cmp int, ok bool) {
	switch {
	case a.Kind == fillout_dto.KindNumber && b.Kind == fillout_dto.KindNumber:
		switch {
		case a.Num < b.Num:
			return -1, true
		case a.Num > b.Num:
			return 1, true
		}
		return 0, true
	case a.Kind == fillout_dto.KindString && b.Kind == fillout_dto.KindString:
		switch {
		case a.Str < b.Str:
			return -1, true
		case a.Str > b.Str:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
