package parser

import (
	"fmt"

	"github.com/csviz/csviz-go/pkg/csviz/models"
)

// AssembleSeries transposes the decoded rows into per-column value sequences
// and pairs each with its chart type and axis routing. Routing a column to
// the secondary axis requires a configured secondary y-title.
func AssembleSeries(h *Header, x []interface{}, rows [][]interface{}) ([]models.Series, error) {
	series := make([]models.Series, 0, len(h.Columns))
	for i, col := range h.Columns {
		if col.Name == "" && col.Secondary {
			// parseColumns rejects bare markers, so this cannot normally occur
			return nil, fmt.Errorf("%w: empty series title", ErrInvalidColumnName)
		}
		axis := models.AxisPrimary
		if col.Secondary {
			if h.YAxis.Secondary == "" {
				return nil, fmt.Errorf("%w: column %q", ErrMissingSecondaryAxis, col.Name)
			}
			axis = models.AxisSecondary
		}
		y := make([]interface{}, len(rows))
		for r, row := range rows {
			y[r] = row[i]
		}
		series = append(series, models.Series{
			Title: col.Name,
			Axis:  axis,
			Type:  h.Types[i],
			X:     x,
			Y:     y,
		})
	}
	return series, nil
}

// BuildSpec assembles the final chart specification. It is a pure assembly
// step and never fails: the title is copied verbatim, and the secondary
// y-title is included only when some series routes to it.
func BuildSpec(h *Header, series []models.Series) *models.ChartSpec {
	y := h.YAxis
	secondary := false
	for _, s := range series {
		if s.Axis == models.AxisSecondary {
			secondary = true
			break
		}
	}
	if !secondary {
		y.Secondary = ""
	}
	return &models.ChartSpec{
		Title:  h.Title,
		XAxis:  h.XAxis,
		YAxis:  y,
		Series: series,
	}
}

// Parse runs the full pipeline over the dataset lines: header validation,
// directive parsing, row decoding, series assembly, and spec building. Any
// stage failure yields no specification.
func Parse(lines []string, cfg Config) (*models.ChartSpec, error) {
	if len(lines) < DirectiveLines {
		return nil, fmt.Errorf("%w: expected %d directive lines, got %d",
			ErrMalformedHeader, DirectiveLines, len(lines))
	}
	h, err := ParseHeader(lines[:DirectiveLines], cfg)
	if err != nil {
		return nil, err
	}
	x, rows, err := DecodeRows(lines[DirectiveLines:], len(h.Columns), cfg)
	if err != nil {
		return nil, err
	}
	series, err := AssembleSeries(h, x, rows)
	if err != nil {
		return nil, err
	}
	return BuildSpec(h, series), nil
}
