package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csviz/csviz-go/pkg/csviz/models"
)

var testConfig = Config{Delimiter: ","}

func header(title, x, y, types, cols string) []string {
	return []string{"#" + title, "#" + x, "#" + y, "#" + types, "#" + cols}
}

func TestParseHeaderRoundTrip(t *testing.T) {
	h, err := ParseHeader(header("Requests", "minute", "count", "lines", "min,req"), testConfig)
	require.NoError(t, err)

	assert.Equal(t, "Requests", h.Title)
	assert.Equal(t, models.XAxis{Title: "minute"}, h.XAxis)
	assert.Equal(t, models.YAxis{Primary: "count"}, h.YAxis)
	assert.Equal(t, "min", h.XColumn)
	assert.Equal(t, []ColumnSpec{{Name: "req"}}, h.Columns)
	assert.Equal(t, []models.ChartType{models.Lines}, h.Types)
}

func TestParseXAxisRangeSlider(t *testing.T) {
	tests := []struct {
		line string
		want models.XAxis
	}{
		{"time:rangeslider", models.XAxis{Title: "time", RangeSlider: true}},
		{"time:foo", models.XAxis{Title: "time:foo"}},
		{"time", models.XAxis{Title: "time"}},
		{"a:b:rangeslider", models.XAxis{Title: "a:b:rangeslider"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseXAxis(tt.line), "line %q", tt.line)
	}
}

func TestParseYAxis(t *testing.T) {
	assert.Equal(t, models.YAxis{Primary: "ms"}, parseYAxis("ms", ","))
	assert.Equal(t, models.YAxis{Primary: "ms", Secondary: "s"}, parseYAxis("ms,s", ","))
	// extra tokens beyond the second are ignored
	assert.Equal(t, models.YAxis{Primary: "ms", Secondary: "s"}, parseYAxis("ms,s,h", ","))
}

func TestParseHeaderBroadcastTypes(t *testing.T) {
	// single token broadcast
	h, err := ParseHeader(header("T", "x", "y", "bar", "t,a,b,c"), testConfig)
	require.NoError(t, err)
	assert.Equal(t, []models.ChartType{models.Bar, models.Bar, models.Bar}, h.Types)

	// placeholder-led single type broadcast
	h, err = ParseHeader(header("T", "x", "y", "_,bar", "t,a,b,c"), testConfig)
	require.NoError(t, err)
	assert.Equal(t, []models.ChartType{models.Bar, models.Bar, models.Bar}, h.Types)

	// explicit per-column list
	h, err = ParseHeader(header("T", "x", "y", "_,bar,scatter,lines", "t,a,b,c"), testConfig)
	require.NoError(t, err)
	assert.Equal(t, []models.ChartType{models.Bar, models.Scatter, models.Lines}, h.Types)
}

func TestParseHeaderTypeErrors(t *testing.T) {
	// more types than data columns
	_, err := ParseHeader(header("T", "x", "y", "_,bar,scatter,lines", "t,a,b"), testConfig)
	assert.ErrorIs(t, err, ErrColumnCountMismatch)

	// explicit list shorter than the column count
	_, err = ParseHeader(header("T", "x", "y", "_,bar,scatter", "t,a,b,c"), testConfig)
	assert.ErrorIs(t, err, ErrColumnCountMismatch)

	// multiple types without the leading placeholder
	_, err = ParseHeader(header("T", "x", "y", "bar,scatter", "t,a,b"), testConfig)
	assert.ErrorIs(t, err, ErrBadTypeList)

	// unrecognized tag
	_, err = ParseHeader(header("T", "x", "y", "pie", "t,a"), testConfig)
	assert.ErrorIs(t, err, ErrUnknownChartType)

	// placeholder alone is not a type
	_, err = ParseHeader(header("T", "x", "y", "_", "t,a"), testConfig)
	assert.ErrorIs(t, err, ErrUnknownChartType)
}

func TestParseHeaderTypeCaseFolding(t *testing.T) {
	h, err := ParseHeader(header("T", "x", "y", "_, Bar ,SCATTER", "t,a,b"), testConfig)
	require.NoError(t, err)
	assert.Equal(t, []models.ChartType{models.Bar, models.Scatter}, h.Types)
}

func TestParseColumns(t *testing.T) {
	xcol, cols, err := parseColumns("min, req ,%latency", ",")
	require.NoError(t, err)
	assert.Equal(t, "min", xcol)
	assert.Equal(t, []ColumnSpec{
		{Name: "req"},
		{Name: "latency", Secondary: true},
	}, cols)
}

func TestParseColumnsErrors(t *testing.T) {
	// a bare secondary marker is not a column name
	_, _, err := parseColumns("min,%", ",")
	assert.ErrorIs(t, err, ErrInvalidColumnName)

	// fewer than two tokens
	_, _, err = parseColumns("min", ",")
	assert.ErrorIs(t, err, ErrNoDataColumns)
}
