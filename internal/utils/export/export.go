// Package export renders projection lines for the preview command.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for projection lines.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want csv or yaml)", s)
	}
}

// LineRow is the flat export shape of a domain.ProjectionLine.
type LineRow struct {
	Month       string `csv:"month" yaml:"month"`
	Amount      int64  `csv:"amount" yaml:"amount"`
	Projected   bool   `csv:"projected" yaml:"projected"`
	Description string `csv:"description" yaml:"description,omitempty"`
}

// Rows flattens lines, keeping their order.
func Rows(lines []domain.ProjectionLine) []LineRow {
	rows := make([]LineRow, len(lines))
	for i, l := range lines {
		rows[i] = LineRow{
			Month:       l.Month.String(),
			Amount:      l.Amount,
			Projected:   l.Projected,
			Description: l.Description,
		}
	}
	return rows
}

// Write encodes lines to w in the given format.
func Write(w io.Writer, format Format, lines []domain.ProjectionLine) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, lines)
	case FormatYAML:
		return WriteYAML(w, lines)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes a header row followed by one row per line.
func WriteCSV(w io.Writer, lines []domain.ProjectionLine) error {
	rows := Rows(lines)
	csvWriter := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteYAML writes lines as a YAML sequence.
func WriteYAML(w io.Writer, lines []domain.ProjectionLine) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Rows(lines)); err != nil {
		return fmt.Errorf("error writing YAML data: %w", err)
	}
	return enc.Close()
}
