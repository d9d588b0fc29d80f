package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/utils/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleLines() []domain.ProjectionLine {
	return []domain.ProjectionLine{
		{Month: domain.YearMonth{Year: 2024, Month: time.November}, Amount: 30000, Projected: true},
		{Month: domain.YearMonth{Year: 2024, Month: time.December}, Amount: 10000, Projected: true, Description: "final"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{"csv", export.FormatCSV, false},
		{" YAML ", export.FormatYAML, false},
		{"yml", export.FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatCSV, sampleLines()))

	assert.Equal(t, "month,amount,projected,description\n"+
		"2024-11,30000,true,\n"+
		"2024-12,10000,true,final\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatYAML, sampleLines()))

	var rows []export.LineRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, export.Rows(sampleLines()), rows)
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, export.Write(&bytes.Buffer{}, export.Format("xml"), sampleLines()))
}
