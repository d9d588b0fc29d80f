package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearMonth_AddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start domain.YearMonth
		n     int
		want  domain.YearMonth
	}{
		{"same year", domain.YearMonth{Year: 2024, Month: time.March}, 2, domain.YearMonth{Year: 2024, Month: time.May}},
		{"rolls into next year", domain.YearMonth{Year: 2024, Month: time.November}, 3, domain.YearMonth{Year: 2025, Month: time.February}},
		{"negative", domain.YearMonth{Year: 2024, Month: time.January}, -1, domain.YearMonth{Year: 2023, Month: time.December}},
		{"twelve", domain.YearMonth{Year: 2024, Month: time.June}, 12, domain.YearMonth{Year: 2025, Month: time.June}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMonths(tt.n))
		})
	}
}

func TestYearMonth_ParseAndString(t *testing.T) {
	m, err := domain.ParseYearMonth("2024-07")
	require.NoError(t, err)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.July}, m)
	assert.Equal(t, "2024-07", m.String())

	_, err = domain.ParseYearMonth("2024-13")
	assert.Error(t, err)
	_, err = domain.ParseYearMonth("July")
	assert.Error(t, err)
}

func TestYearMonth_Compare(t *testing.T) {
	jan := domain.YearMonth{Year: 2024, Month: time.January}
	dec := domain.YearMonth{Year: 2023, Month: time.December}

	assert.True(t, dec.Before(jan))
	assert.True(t, jan.After(dec))
	assert.Equal(t, 0, jan.Compare(jan))
	assert.Equal(t, 1, dec.MonthsUntil(jan))
	assert.Equal(t, -1, jan.MonthsUntil(dec))
}

func TestYearMonth_Days(t *testing.T) {
	feb := domain.YearMonth{Year: 2024, Month: time.February}
	assert.Equal(t, 29, feb.DaysIn())
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), feb.FirstDay())
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), feb.LastDay())
}

func TestMonthWindow(t *testing.T) {
	w := domain.MonthWindow{
		Start: domain.YearMonth{Year: 2024, Month: time.November},
		End:   domain.YearMonth{Year: 2025, Month: time.February},
	}
	require.NoError(t, w.Validate())
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, []int{2024, 2025}, w.Years())
	assert.True(t, w.Contains(domain.YearMonth{Year: 2025, Month: time.January}))
	assert.False(t, w.Contains(domain.YearMonth{Year: 2025, Month: time.March}))

	months := w.Months()
	require.Len(t, months, 4)
	assert.Equal(t, w.Start, months[0])
	assert.Equal(t, w.End, months[3])

	inverted := domain.MonthWindow{Start: w.End, End: w.Start}
	assert.Error(t, inverted.Validate())
	assert.Error(t, domain.MonthWindow{}.Validate())

	fw := domain.ForwardWindow(domain.YearMonth{Year: 2024, Month: time.March}, 12)
	assert.Equal(t, domain.YearMonth{Year: 2025, Month: time.February}, fw.End)
}
