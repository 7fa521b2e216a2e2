package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// isoLayout is the canonical text form timestamps are normalized to on read.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// CoerceString stringifies v when it carries a usable scalar value. Nil and
// composite values are rejected so the caller leaves the field unwritten.
func CoerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// CoerceBool passes booleans through and rejects everything else. Truthiness
// coercion is deliberately not performed; a missing or mistyped flag stays
// unwritten so merge-writes cannot flip a stored value.
func CoerceBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// CoerceNumber accepts numbers and numeric strings, keeping only finite values.
func CoerceNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoerceInt truncates a coercible number to an integer.
func CoerceInt(v any) (int64, bool) {
	f, ok := CoerceNumber(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// CoerceCount is CoerceInt restricted to non-negative counter values.
func CoerceCount(v any) (int64, bool) {
	n, ok := CoerceInt(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// CoerceTags accepts an ordered list or a comma-separated string, trims each
// entry and drops empty ones. The result is never nil when ok is true.
func CoerceTags(v any) ([]string, bool) {
	var raw []string
	switch t := v.(type) {
	case []string:
		raw = t
	case []any:
		raw = make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := CoerceString(e); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(t, ",")
	default:
		return nil, false
	}

	tags := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			tags = append(tags, s)
		}
	}
	return tags, true
}

// ToISO normalizes a stored timestamp to its canonical text form. It accepts
// text values (passed through), store-native time values, and raw
// {seconds, nanoseconds} pairs. Anything else yields nil, never an error.
func ToISO(v any) any {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(isoLayout)
	case map[string]any:
		sec, ok := CoerceNumber(firstOf(t, "seconds", "_seconds"))
		if !ok {
			return nil
		}
		nanos, _ := CoerceNumber(firstOf(t, "nanoseconds", "_nanoseconds"))
		ms := int64(sec)*1000 + int64(nanos)/int64(time.Millisecond)
		return time.UnixMilli(ms).UTC().Format(isoLayout)
	default:
		return nil
	}
}

func firstOf(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
