package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/projection"
	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		target time.Time
		want   int
	}{
		{"whole months", date(2024, time.January, 1), date(2024, time.July, 1), 6},
		{"target day after start day keeps partial month", date(2024, time.January, 10), date(2024, time.July, 20), 6},
		{"target day before start day drops partial month", date(2024, time.January, 20), date(2024, time.July, 10), 5},
		{"never less than one", date(2024, time.January, 20), date(2024, time.February, 10), 1},
		{"across years", date(2023, time.November, 1), date(2024, time.February, 1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projection.MonthsBetween(tt.start, tt.target))
		})
	}
}

func TestCalculateMonthlyContribution(t *testing.T) {
	t.Run("six whole months", func(t *testing.T) {
		amount, ok := projection.CalculateMonthlyContribution(120000, 0, date(2024, time.July, 1), date(2024, time.January, 1))
		assert.True(t, ok)
		assert.Equal(t, int64(20000), amount)
	})

	t.Run("rounds up", func(t *testing.T) {
		amount, ok := projection.CalculateMonthlyContribution(100000, 0, date(2024, time.April, 1), date(2024, time.January, 1))
		assert.True(t, ok)
		assert.Equal(t, int64(33334), amount)
	})

	t.Run("accounts for current amount", func(t *testing.T) {
		amount, ok := projection.CalculateMonthlyContribution(120000, 60000, date(2024, time.July, 1), date(2024, time.January, 1))
		assert.True(t, ok)
		assert.Equal(t, int64(10000), amount)
	})

	t.Run("target date equal to start", func(t *testing.T) {
		_, ok := projection.CalculateMonthlyContribution(120000, 0, date(2024, time.January, 1), date(2024, time.January, 1))
		assert.False(t, ok)
	})

	t.Run("target date before start", func(t *testing.T) {
		_, ok := projection.CalculateMonthlyContribution(120000, 0, date(2023, time.June, 1), date(2024, time.January, 1))
		assert.False(t, ok)
	})

	t.Run("goal already met", func(t *testing.T) {
		_, ok := projection.CalculateMonthlyContribution(120000, 120000, date(2024, time.July, 1), date(2024, time.January, 1))
		assert.False(t, ok)
	})
}
