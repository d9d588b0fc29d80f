package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMonthToken(t *testing.T) {
	month := domain.YearMonth{Year: 2024, Month: time.March}

	token := EncodeMonthToken(month, "cat-savings")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedMonth, tiebreak, err := DecodeMonthToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, month, decodedMonth, "Month should match after decode")
	assert.Equal(t, "cat-savings", tiebreak, "Tiebreak should match after decode")

	// Empty tiebreak survives the round trip
	decodedMonth, tiebreak, err = DecodeMonthToken(EncodeMonthToken(month, ""))
	assert.NoError(t, err)
	assert.Equal(t, month, decodedMonth)
	assert.Empty(t, tiebreak)
}

func TestDecodeMonthTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeMonthToken("this is not base64!")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, _, err = DecodeMonthToken(base64.StdEncoding.EncodeToString([]byte("2024-03")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid month
	_, _, err = DecodeMonthToken(base64.StdEncoding.EncodeToString([]byte("2024-13|cat")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "month parse", "Error should mention month parsing issue")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	// Test with multiple fields
	fields := []string{"field1", "field2", "field3"}
	token := EncodeMultiFieldToken(fields...)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedFields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decodedFields, "Fields should match after decode")

	// Test with single field
	singleToken := EncodeMultiFieldToken("single")
	decodedSingle, err := DecodeMultiFieldToken(singleToken)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single"}, decodedSingle)

	// Test invalid base64
	_, err = DecodeMultiFieldToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
}
