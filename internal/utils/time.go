package util

import (
	"fmt"
	"strconv"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// Layouts accepted for date filters, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateOnlyLayout,
}

// ParseDate parses a query-string date in any of the accepted layouts.
// An empty string means "no filter" and yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

// ParseDateRangeEnd parses the upper bound of a date filter. A date-only
// value is pinned to the last instant of that day, so a "toDate" of
// 2026-01-31 includes submissions made during that day. Values carrying
// a time component, midnight included, filter exactly as given.
func ParseDateRangeEnd(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		return &end, nil
	}
	return ParseDate(s)
}

// ParseFloat parses an optional numeric query parameter. An empty string
// yields nil.
func ParseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}
