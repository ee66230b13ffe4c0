package metadata

import "strings"

// hiddenNulls are string values that conventionally mean "no data" even
// though the field is technically filled. Matched case-insensitively
// after trimming. The German entries come straight from the source
// catalog's free-text habits.
var hiddenNulls = map[string]struct{}{
	"":             {},
	"null":         {},
	"[]":           {},
	"{}":           {},
	"nan":          {},
	"none":         {},
	"ohne angabe":  {},
	"keine angabe": {},
	"nichts":       {},
	"n/a":          {},
}

// IsHiddenNull reports whether a string value is one of the sentinel
// "no data" spellings.
func IsHiddenNull(s string) bool {
	_, ok := hiddenNulls[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsPresent reports whether a field carries an actual value: the key
// exists and its value is not nil, not a hidden-null string, not an
// empty container, and not a list of only empty/falsy elements. Values
// of any other type (numbers included, zero included) count as present,
// matching the reference rubric. Works on datasets and on individual
// resources, both being plain maps.
func IsPresent(record map[string]any, field string) bool {
	value, ok := record[field]
	if !ok {
		return false
	}
	return valuePresent(value)
}

func valuePresent(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return !IsHiddenNull(v)
	case []any:
		for _, item := range v {
			if !falsy(item) {
				return true
			}
		}
		return false
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// falsy mirrors the reference rubric's notion of an empty list element:
// nil, false, empty string, numeric zero, or an empty container.
func falsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
