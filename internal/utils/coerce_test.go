package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"string", "hello", "hello", true},
		{"float", 3.5, "3.5", true},
		{"whole float", float64(7), "7", true},
		{"int", 42, "42", true},
		{"bool", true, "true", true},
		{"nil", nil, "", false},
		{"map", map[string]any{}, "", false},
		{"slice", []any{"a"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceString(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceBoolRejectsTruthiness(t *testing.T) {
	b, ok := CoerceBool(true)
	require.True(t, ok)
	assert.True(t, b)

	_, ok = CoerceBool("true")
	assert.False(t, ok)
	_, ok = CoerceBool(1)
	assert.False(t, ok)
	_, ok = CoerceBool(nil)
	assert.False(t, ok)
}

func TestCoerceNumber(t *testing.T) {
	n, ok := CoerceNumber(" 42.5 ")
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	n, ok = CoerceNumber(7)
	require.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = CoerceNumber("abc")
	assert.False(t, ok)

	// parseable but not finite
	_, ok = CoerceNumber("Inf")
	assert.False(t, ok)
	_, ok = CoerceNumber("NaN")
	assert.False(t, ok)
}

func TestCoerceCount(t *testing.T) {
	n, ok := CoerceCount(3.9)
	require.True(t, ok)
	assert.Equal(t, int64(3), n)

	_, ok = CoerceCount(-1)
	assert.False(t, ok)
	_, ok = CoerceCount("many")
	assert.False(t, ok)
}

func TestCoerceTags(t *testing.T) {
	tags, ok := CoerceTags("a, b ,,c")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, tags)

	tags, ok = CoerceTags([]any{"x", 2, nil, " y "})
	require.True(t, ok)
	assert.Equal(t, []string{"x", "2", "y"}, tags)

	tags, ok = CoerceTags([]any{})
	require.True(t, ok)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)

	_, ok = CoerceTags(42)
	assert.False(t, ok)
}

func TestToISO(t *testing.T) {
	assert.Equal(t, "2024-05-01", ToISO("2024-05-01"))

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05.000Z", ToISO(ts))

	// raw {seconds, nanoseconds} pair
	assert.Equal(t, "2023-11-14T22:13:20.500Z", ToISO(map[string]any{
		"seconds":     float64(1700000000),
		"nanoseconds": float64(500000000),
	}))

	// underscore-prefixed variant, no nanos
	assert.Equal(t, "2023-11-14T22:13:20.000Z", ToISO(map[string]any{
		"_seconds": float64(1700000000),
	}))

	assert.Nil(t, ToISO(map[string]any{"nanoseconds": 1}))
	assert.Nil(t, ToISO(12345))
	assert.Nil(t, ToISO(nil))
}
