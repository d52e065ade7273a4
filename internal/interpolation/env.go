// Package interpolation expands environment variable references in
// configuration values.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVariable is returned for a ${NAME} reference with no value and no default
var ErrUndefinedVariable = errors.New("environment variable not defined")

// Matches ${NAME} and ${NAME:default}. The colon is captured on its own so
// that ${NAME:} means "default to empty".
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc returns the value of a variable and whether it is set
type LookupFunc func(name string) (string, bool)

// Expand replaces ${NAME} and ${NAME:default} in input using lookup. Every
// undefined reference without a default is reported and left in place.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVariable, name))
		return match
	})

	return result, errors.Join(missing...)
}

// ExpandEnv is Expand against the process environment
func ExpandEnv(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}
