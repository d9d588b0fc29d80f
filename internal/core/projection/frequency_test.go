package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/projection"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ym(y int, m time.Month) domain.YearMonth {
	return domain.YearMonth{Year: y, Month: m}
}

func TestShouldIncludeInMonth(t *testing.T) {
	anchor := date(2024, time.March, 15)

	tests := []struct {
		name      string
		frequency domain.Frequency
		candidate domain.YearMonth
		want      bool
	}{
		{"before anchor month is excluded", domain.FrequencyMonthly, ym(2024, time.February), false},
		{"anchor month is included", domain.FrequencyMonthly, ym(2024, time.March), true},
		{"empty frequency behaves monthly", "", ym(2024, time.June), true},
		{"daily lands every month", domain.FrequencyDaily, ym(2024, time.April), true},
		{"weekly lands every month", domain.FrequencyWeekly, ym(2025, time.January), true},
		{"biweekly lands every month", domain.FrequencyBiweekly, ym(2024, time.May), true},
		{"quarterly on anchor", domain.FrequencyQuarterly, ym(2024, time.March), true},
		{"quarterly three months later", domain.FrequencyQuarterly, ym(2024, time.June), true},
		{"quarterly off cycle", domain.FrequencyQuarterly, ym(2024, time.May), false},
		{"quarterly across the year", domain.FrequencyQuarterly, ym(2025, time.March), true},
		{"yearly same calendar month", domain.FrequencyYearly, ym(2025, time.March), true},
		{"yearly other month", domain.FrequencyYearly, ym(2025, time.April), false},
		{"daily before anchor is excluded", domain.FrequencyDaily, ym(2023, time.December), false},
		{"unknown frequency", "hourly", ym(2024, time.April), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projection.ShouldIncludeInMonth(tt.frequency, anchor, tt.candidate))
		})
	}
}

func TestCalculateMonthlyTotal(t *testing.T) {
	tests := []struct {
		frequency domain.Frequency
		amount    int64
		want      int64
	}{
		{domain.FrequencyDaily, 1000, 30000},
		{domain.FrequencyWeekly, 1200, 5200},
		{domain.FrequencyBiweekly, 1200, 2600},
		{domain.FrequencyMonthly, 1234, 1234},
		{domain.FrequencyQuarterly, 3000, 1000},
		{domain.FrequencyYearly, 12000, 1000},
		{domain.FrequencyYearly, 100, 8},
		{"", 500, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.want, projection.CalculateMonthlyTotal(tt.frequency, tt.amount))
		})
	}
}
