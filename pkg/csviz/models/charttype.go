package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChartType identifies the rendering primitive used for a series.
// The set of chart types is closed.
type ChartType int

const (
	// Lines draws the series as a connected line plot.
	Lines ChartType = iota
	// Bar draws the series as grouped bars.
	Bar
	// Scatter draws the series as unconnected markers.
	Scatter
)

// ParseChartType resolves a chart-type tag. Tags are matched
// case-insensitively after trimming whitespace.
func ParseChartType(tag string) (ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "lines":
		return Lines, nil
	case "bar":
		return Bar, nil
	case "scatter":
		return Scatter, nil
	}
	return 0, fmt.Errorf("unknown chart type %q", tag)
}

// String returns the canonical lower-case tag for the chart type.
func (t ChartType) String() string {
	switch t {
	case Lines:
		return "lines"
	case Bar:
		return "bar"
	case Scatter:
		return "scatter"
	}
	return fmt.Sprintf("ChartType(%d)", int(t))
}

// MarshalJSON encodes the chart type as its tag.
func (t ChartType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a chart type from its tag.
func (t *ChartType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParseChartType(tag)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
