package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
)

// EncodeMonthToken creates a token positioned after the row at (month, tiebreak).
// Listings ordered by month use the category id as the tiebreak.
func EncodeMonthToken(month domain.YearMonth, tiebreak string) string {
	return EncodeMultiFieldToken(month.String(), tiebreak)
}

// DecodeMonthToken parses a token produced by EncodeMonthToken. Errors wrap apperrors.ErrValidation.
func DecodeMonthToken(token string) (domain.YearMonth, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.YearMonth{}, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if len(parts) != 2 {
		return domain.YearMonth{}, "", fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	month, err := domain.ParseYearMonth(parts[0])
	if err != nil {
		return domain.YearMonth{}, "", fmt.Errorf("%w: invalid pagination token format (month parse): %v", apperrors.ErrValidation, err)
	}
	return month, parts[1], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
