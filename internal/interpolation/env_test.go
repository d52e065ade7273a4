package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		vars        map[string]string
		expected    string
		expectError bool
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no references", input: "hello world", expected: "hello world"},
		{
			name:     "single reference",
			input:    "${TEST_VAR}",
			vars:     map[string]string{"TEST_VAR": "test_value"},
			expected: "test_value",
		},
		{
			name:     "reference in middle",
			input:    "prefix_${TEST_VAR}_suffix",
			vars:     map[string]string{"TEST_VAR": "test_value"},
			expected: "prefix_test_value_suffix",
		},
		{
			name:     "multiple references",
			input:    "${VAR1}/${VAR2}/${VAR3}",
			vars:     map[string]string{"VAR1": "a", "VAR2": "b", "VAR3": "c"},
			expected: "a/b/c",
		},
		{
			name:        "undefined",
			input:       "${UNDEFINED_VAR}",
			expected:    "${UNDEFINED_VAR}",
			expectError: true,
		},
		{
			name:        "mixed defined and undefined",
			input:       "${DEFINED}/${UNDEFINED}",
			vars:        map[string]string{"DEFINED": "value"},
			expected:    "value/${UNDEFINED}",
			expectError: true,
		},
		{
			name:     "default used",
			input:    "/var/log/app-${HOST:local}.log",
			expected: "/var/log/app-local.log",
		},
		{
			name:     "default ignored when set",
			input:    "${PORT:8080}",
			vars:     map[string]string{"PORT": "9090"},
			expected: "9090",
		},
		{
			name:     "empty default",
			input:    "a${SUFFIX:}",
			expected: "a",
		},
		{
			name:     "set to empty beats default",
			input:    "${EMPTY:fallback}",
			vars:     map[string]string{"EMPTY": ""},
			expected: "",
		},
		{
			name:     "bare dollar untouched",
			input:    "$HOME and ${",
			expected: "$HOME and ${",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Expand(tt.input, mapLookup(tt.vars))
			if tt.expectError {
				require.ErrorIs(t, err, ErrUndefinedVariable)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("DROPLET_TEST_EXPAND", "from-env")

	got, err := ExpandEnv("value=${DROPLET_TEST_EXPAND}")
	require.NoError(t, err)
	assert.Equal(t, "value=from-env", got)
}

func TestExpandValues(t *testing.T) {
	t.Parallel()
	table := map[string]any{
		"output": "/logs/${APP}.log",
		"level":  "${LEVEL:info}",
		"count":  int64(3),
		"nested": map[string]any{"path": "${APP}/nested"},
		"list":   []any{"${APP}", int64(1), map[string]any{"deep": "${APP}"}},
	}

	err := ExpandValues(table, mapLookup(map[string]string{"APP": "droplet"}))
	require.NoError(t, err)

	assert.Equal(t, "/logs/droplet.log", table["output"])
	assert.Equal(t, "info", table["level"])
	assert.Equal(t, int64(3), table["count"])
	assert.Equal(t, "droplet/nested", table["nested"].(map[string]any)["path"])
	list := table["list"].([]any)
	assert.Equal(t, "droplet", list[0])
	assert.Equal(t, "droplet", list[2].(map[string]any)["deep"])

	bad := map[string]any{"a": "${MISSING}", "b": []any{"${ALSO_MISSING}"}}
	err = ExpandValues(bad, mapLookup(nil))
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Contains(t, err.Error(), "MISSING")
	assert.Contains(t, err.Error(), "b: [0]")
}
