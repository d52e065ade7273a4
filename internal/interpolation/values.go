package interpolation

import (
	"errors"
	"fmt"
	"strconv"
)

// ExpandValues expands every string inside a decoded TOML table in place,
// descending into nested tables and arrays. Non-string values are left alone.
func ExpandValues(table map[string]any, lookup LookupFunc) error {
	var errz []error
	for key, value := range table {
		expanded, err := expandValue(value, lookup)
		if err != nil {
			errz = append(errz, fmt.Errorf("%s: %w", key, err))
			continue
		}
		table[key] = expanded
	}
	return errors.Join(errz...)
}

func expandValue(value any, lookup LookupFunc) (any, error) {
	switch v := value.(type) {
	case string:
		return Expand(v, lookup)
	case map[string]any:
		return v, ExpandValues(v, lookup)
	case []any:
		var errz []error
		for i, elem := range v {
			expanded, err := expandValue(elem, lookup)
			if err != nil {
				errz = append(errz, fmt.Errorf("[%s]: %w", strconv.Itoa(i), err))
				continue
			}
			v[i] = expanded
		}
		return v, errors.Join(errz...)
	default:
		return value, nil
	}
}
