package config

import (
	"fmt"
	"time"
)

// Section is a free-form configuration table owned by a single provider.
// Values keep the types produced by the TOML decoder (string, int64,
// float64, bool, []any, map[string]any).
type Section map[string]any

// String returns the string at key, or def when absent or not a string
func (s Section) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Int returns the integer at key, or def when absent or not numeric
func (s Section) Int(key string, def int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Bool returns the boolean at key, or def when absent or not a boolean
func (s Section) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}

// Duration parses the string at key as a duration. An absent key returns def;
// a present but unparsable value is an error.
func (s Section) Duration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := s[key]
	if !ok {
		return def, nil
	}
	str, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a duration string", ErrInvalidValue, key)
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return d, nil
}

// Has reports whether key is present
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}
