package domain

import (
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewYearMonth normalises out-of-range months (e.g. month 13 rolls into the next year).
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// YearMonthOf returns the calendar month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses the YYYY-MM form.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return YearMonthOf(t), nil
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero value.
func (m YearMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// AddMonths returns the month n months after m (n may be negative).
func (m YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(m.Year, m.Month+time.Month(n))
}

// index is a monotonically increasing month counter used for arithmetic.
func (m YearMonth) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// MonthsUntil returns the number of months from m to other (negative if other is earlier).
func (m YearMonth) MonthsUntil(other YearMonth) int {
	return other.index() - m.index()
}

// Compare returns -1, 0 or +1.
func (m YearMonth) Compare(other YearMonth) int {
	switch d := m.index() - other.index(); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (m YearMonth) Before(other YearMonth) bool { return m.Compare(other) < 0 }
func (m YearMonth) After(other YearMonth) bool  { return m.Compare(other) > 0 }

// FirstDay returns midnight UTC on the first day of the month.
func (m YearMonth) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month.
func (m YearMonth) LastDay() time.Time {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func (m YearMonth) DaysIn() int {
	return m.LastDay().Day()
}

// MarshalText encodes the month as YYYY-MM. The zero month encodes as "".
func (m YearMonth) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes the YYYY-MM form.
func (m *YearMonth) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = YearMonth{}
		return nil
	}
	parsed, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MonthWindow is an inclusive range of calendar months.
type MonthWindow struct {
	Start YearMonth `json:"startMonth"`
	End   YearMonth `json:"endMonth"`
}

// ForwardWindow returns the window starting at start and spanning n months.
func ForwardWindow(start YearMonth, n int) MonthWindow {
	if n < 1 {
		n = 1
	}
	return MonthWindow{Start: start, End: start.AddMonths(n - 1)}
}

// Validate rejects empty or inverted windows.
func (w MonthWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("window bounds are required")
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("window end %s is before start %s", w.End, w.Start)
	}
	return nil
}

// Len returns the number of months in the window.
func (w MonthWindow) Len() int {
	return w.Start.MonthsUntil(w.End) + 1
}

// Contains reports whether m lies within the window.
func (w MonthWindow) Contains(m YearMonth) bool {
	return !m.Before(w.Start) && !m.After(w.End)
}

// Months lists every month in the window in order.
func (w MonthWindow) Months() []YearMonth {
	n := w.Len()
	if n <= 0 {
		return nil
	}
	months := make([]YearMonth, 0, n)
	for m := w.Start; !m.After(w.End); m = m.AddMonths(1) {
		months = append(months, m)
	}
	return months
}

// Years lists the distinct calendar years touched by the window.
func (w MonthWindow) Years() []int {
	years := make([]int, 0, w.End.Year-w.Start.Year+1)
	for y := w.Start.Year; y <= w.End.Year; y++ {
		years = append(years, y)
	}
	return years
}

func (w MonthWindow) String() string {
	return w.Start.String() + ".." + w.End.String()
}
