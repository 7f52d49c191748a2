package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonthKey validates a canonical YYYY-MM month key and returns the
// half-open date range [first-of-month, first-of-next-month). Only the
// four-digit-year, two-digit-month form is accepted: a key like "2025-7"
// would be stored verbatim and never match the "2025-07" key derived
// from expense dates. Malformed keys are a validation error, never a
// computed wrong range.
func ParseMonthKey(month string) (time.Time, time.Time, error) {
	parts := strings.Split(month, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 || !allDigits(parts[0]) || !allDigits(parts[1]) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrValidation, month)
	}

	year, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if m < 1 || m > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month segment must be 01-12, got %q", ErrValidation, month)
	}

	start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MonthKeyOf formats the month key a date falls in.
func MonthKeyOf(t time.Time) string {
	return t.UTC().Format("2006-01")
}
