package yield_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/yield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconstruct(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Date: day(time.March, 2), Amount: 500},
		{Date: day(time.March, 4), Amount: -200},
		{Date: day(time.March, 4), Amount: 50},
		{Date: day(time.March, 6), Amount: 1000}, // after the anchor
	}

	series, err := yield.Reconstruct(1350, day(time.March, 5), entries, day(time.March, 1), day(time.March, 4))
	require.NoError(t, err)
	require.Len(t, series, 4)

	want := []int64{1000, 1000, 1500, 1500}
	for i, b := range series {
		assert.Equal(t, day(time.March, i+1), b.Date)
		assert.Equal(t, want[i], b.Balance, "day %d", i+1)
	}
}

func TestReconstruct_NoEntriesPropagatesBalance(t *testing.T) {
	series, err := yield.Reconstruct(700, day(time.April, 30), nil, day(time.April, 1), day(time.April, 30))
	require.NoError(t, err)
	require.Len(t, series, 30)
	for _, b := range series {
		assert.Equal(t, int64(700), b.Balance)
	}
}

func TestReconstruct_AnchorBeforeWindowEnd(t *testing.T) {
	_, err := yield.Reconstruct(100, day(time.March, 10), nil, day(time.March, 1), day(time.March, 31))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReconstruct_InvertedWindow(t *testing.T) {
	_, err := yield.Reconstruct(100, day(time.April, 10), nil, day(time.March, 31), day(time.March, 1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReconstructMonth(t *testing.T) {
	account := domain.Account{ID: "acc-1", Balance: 10000}
	entries := []domain.LedgerEntry{{Date: day(time.February, 15), Amount: 4000}}

	series, err := yield.ReconstructMonth(account, day(time.March, 3), entries, domain.YearMonth{Year: 2024, Month: time.February})
	require.NoError(t, err)
	require.Len(t, series, 29)
	assert.Equal(t, int64(6000), series[0].Balance)
	assert.Equal(t, int64(6000), series[14].Balance)
	assert.Equal(t, int64(10000), series[15].Balance)
}
