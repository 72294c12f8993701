package template

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// defaultHelpers returns the helper set every new Evaluator ships with.
func defaultHelpers() map[string]HelperFunc {
	return map[string]HelperFunc{
		"formatDate": formatDate,
		"capitalize": capitalize,
		"join":       joinValues,
		"truncate":   truncateValue,
		"if":         inlineIf,
	}
}

// dateLayouts are the accepted input formats for formatDate, tried in
// order. Resume data conventionally carries dates as "2006-01" or
// "2006-01-02" strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"01/02/2006",
	"January 2, 2006",
}

// formatDate renders a date value: "short" (the default) gives a compact
// numeric date, "long" spells out the month, and any other format string
// gives an ISO-8601 timestamp. Empty input gives an empty string and an
// unparseable value passes through unchanged.
func formatDate(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("want a value and an optional format")
	}
	format := "short"
	if len(args) > 1 {
		format = stringify(args[1])
	}

	var t time.Time
	switch v := args[0].(type) {
	case nil:
		return "", nil
	case time.Time:
		t = v
	default:
		s := stringify(v)
		if s == "" {
			return "", nil
		}
		parsed, ok := parseDate(s)
		if !ok {
			return s, nil
		}
		t = parsed
	}

	switch format {
	case "short":
		return t.Format("1/2/2006"), nil
	case "long":
		return t.Format("January 2, 2006"), nil
	default:
		return t.Format(time.RFC3339), nil
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// capitalize uppercases the first character of a string and leaves the
// remainder unchanged.
func capitalize(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("want a string")
	}
	s := stringify(args[0])
	if s == "" {
		return "", nil
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:], nil
}

// joinValues joins the elements of a sequence with a separator
// (default ", "). Non-sequence input yields an empty string.
func joinValues(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("want a sequence and an optional separator")
	}
	items, ok := asSequence(args[0])
	if !ok {
		return "", nil
	}
	sep := ", "
	if len(args) > 1 {
		sep = stringify(args[1])
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringify(item)
	}
	return strings.Join(parts, sep), nil
}

// truncateValue cuts a string to at most length characters (default 100)
// and appends an ellipsis when anything was removed.
func truncateValue(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("want a string and an optional length")
	}
	limit := 100
	if len(args) > 1 {
		n, ok := intArg(args[1])
		if !ok {
			return nil, fmt.Errorf("length must be a number, got %T", args[1])
		}
		limit = n
	}
	if limit < 0 {
		limit = 0
	}

	s := stringify(args[0])
	runes := []rune(s)
	if len(runes) <= limit {
		return s, nil
	}
	return string(runes[:limit]) + "...", nil
}

// inlineIf is the value-level ternary for attribute-like positions where a
// block conditional cannot go: {{if active "yes" "no"}}.
func inlineIf(args ...any) (any, error) {
	if len(args) < 2 {
		return nil, errors.New("want a condition and at least a true value")
	}
	if truthy(args[0]) {
		return args[1], nil
	}
	if len(args) > 2 {
		return args[2], nil
	}
	return "", nil
}

// intArg coerces any numeric value to int. Helper arguments parsed from
// markup arrive as float64; values pulled from data contexts may be any
// numeric type.
func intArg(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), true
	}
	return 0, false
}
