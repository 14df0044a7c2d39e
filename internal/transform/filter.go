package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator names a column filter predicate.
type Operator string

const (
	OpEquals           Operator = "equals"
	OpNotEquals        Operator = "not_equals"
	OpContains         Operator = "contains"
	OpStartsWith       Operator = "starts_with"
	OpEndsWith         Operator = "ends_with"
	OpGreaterThan      Operator = "greater_than"
	OpLessThan         Operator = "less_than"
	OpGreaterThanEqual Operator = "greater_than_equal"
	OpLessThanEqual    Operator = "less_than_equal"
)

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	switch op {
	case OpEquals, OpNotEquals, OpContains, OpStartsWith, OpEndsWith,
		OpGreaterThan, OpLessThan, OpGreaterThanEqual, OpLessThanEqual:
		return true
	}
	return false
}

// Filter is a single column predicate: an operator applied against a value.
type Filter struct {
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// Matches applies the filter to a cell value. Nil cell values never match.
// String operators compare case-insensitively; the four ordering operators
// cast both sides to number and fail when either side is not numeric.
func (f Filter) Matches(cell any) bool {
	if cell == nil {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return strings.EqualFold(stringify(cell), stringify(f.Value))
	case OpNotEquals:
		return !strings.EqualFold(stringify(cell), stringify(f.Value))
	case OpContains:
		return strings.Contains(lower(cell), lower(f.Value))
	case OpStartsWith:
		return strings.HasPrefix(lower(cell), lower(f.Value))
	case OpEndsWith:
		return strings.HasSuffix(lower(cell), lower(f.Value))
	case OpGreaterThan, OpLessThan, OpGreaterThanEqual, OpLessThanEqual:
		cn, cok := toFloat(cell)
		fn, fok := toFloat(f.Value)
		if !cok || !fok {
			return false
		}
		switch f.Operator {
		case OpGreaterThan:
			return cn > fn
		case OpLessThan:
			return cn < fn
		case OpGreaterThanEqual:
			return cn >= fn
		default:
			return cn <= fn
		}
	default:
		return false
	}
}

func lower(v any) string { return strings.ToLower(stringify(v)) }

// stringify renders a scalar the way the UI displays it; nil renders empty.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toFloat coerces numeric scalars and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
