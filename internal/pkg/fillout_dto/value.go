package fillout_dto

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

type ValueKind int

const (
	// KindUndefined is an answer without a "value" key.
	KindUndefined ValueKind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	// KindOther covers arrays and objects. They never compare equal to anything.
	KindOther
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindOther:
		return "other"
	default:
		return "undefined"
	}
}

// Value is a JSON scalar recorded by the submissions API for one answer or
// supplied by a filter clause. The raw bytes are kept so re-encoding is lossless.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	raw  []byte
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func NullValue() Value {
	return Value{Kind: KindNull}
}

func (v Value) IsScalar() bool {
	switch v.Kind {
	case KindString, KindNumber, KindBool:
		return true
	}
	return false
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*v = Value{}
		return nil
	}

	parsed := Value{raw: append([]byte(nil), trimmed...)}
	switch trimmed[0] {
	case '"':
		parsed.Kind = KindString
		if err := json.Unmarshal(trimmed, &parsed.Str); err != nil {
			return err
		}
	case 't', 'f':
		parsed.Kind = KindBool
		if err := json.Unmarshal(trimmed, &parsed.Bool); err != nil {
			return err
		}
	case 'n':
		parsed.Kind = KindNull
	case '[', '{':
		parsed.Kind = KindOther
	default:
		num, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return err
		}
		parsed.Kind = KindNumber
		parsed.Num = num
	}

	*v = parsed
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw != nil {
		return v.raw, nil
	}
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return []byte(strconv.FormatFloat(v.Num, 'f', -1, 64)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.Bool)), nil
	default:
		return []byte("null"), nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindOther:
		return string(v.raw)
	default:
		return v.Kind.String()
	}
}
