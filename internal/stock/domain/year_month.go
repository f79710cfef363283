package domain

import (
	"strconv"
	"strings"
	"time"
)

// YearMonth is a reporting period parsed from a YYYY-MM token.
//
// Parsing only requires two integers around a single dash, so out-of-range
// values such as month 13 are accepted; such periods contain no dates.
type YearMonth struct {
	Year  int
	Month int
}

// ParseYearMonth parses a YYYY-MM token.
func ParseYearMonth(s string) (YearMonth, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return YearMonth{}, ErrInvalidYearMonth
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return YearMonth{}, ErrInvalidYearMonth
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return YearMonth{}, ErrInvalidYearMonth
	}
	return YearMonth{Year: year, Month: month}, nil
}

// Valid reports whether the period names a real calendar month.
func (ym YearMonth) Valid() bool {
	return ym.Year >= 1 && ym.Year <= 9999 && ym.Month >= 1 && ym.Month <= 12
}

// Range returns the half-open date interval [first day, first day of next month).
// ok is false when the period is not a real calendar month.
func (ym YearMonth) Range() (from, to Date, ok bool) {
	if !ym.Valid() {
		return Date{}, Date{}, false
	}
	from = NewDate(ym.Year, time.Month(ym.Month), 1)
	to = Date{Time: from.AddDate(0, 1, 0)}
	return from, to, true
}
