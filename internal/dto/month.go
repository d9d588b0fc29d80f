package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseWindow builds a month window from optional YYYY-MM bounds.
// Both empty means "use the default window" and returns nil.
func ParseWindow(start, end string) (*domain.MonthWindow, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, apperrors.NewValidationError("startMonth and endMonth must be given together")
	}
	startMonth, err := ParseMonth(start)
	if err != nil {
		return nil, err
	}
	endMonth, err := ParseMonth(end)
	if err != nil {
		return nil, err
	}
	window := domain.MonthWindow{Start: startMonth, End: endMonth}
	if err := window.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return &window, nil
}

// ParseMonth parses YYYY-MM into a validation error on failure.
func ParseMonth(s string) (domain.YearMonth, error) {
	m, err := domain.ParseYearMonth(s)
	if err != nil {
		return domain.YearMonth{}, apperrors.NewValidationError(err.Error())
	}
	return m, nil
}

// ParseDate parses YYYY-MM-DD as a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}
