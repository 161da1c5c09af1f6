package parser

import (
	"fmt"
	"strings"

	"github.com/csviz/csviz-go/pkg/csviz/models"
)

const (
	// secondaryMarker prefixed onto a column title routes the series to the
	// secondary y-axis.
	secondaryMarker = "%"
	// placeholderToken leads the chart-type line when per-column types follow.
	placeholderToken = "_"
	// rangeSliderToken enables the x-axis range slider.
	rangeSliderToken = "rangeslider"
	// subDirectiveSep separates the x-axis title from its sub-directive.
	subDirectiveSep = ":"
)

// ColumnSpec names one data column and its axis routing.
type ColumnSpec struct {
	// Name is the column title with any secondary-axis marker stripped.
	Name string
	// Secondary reports whether the column routes to the secondary y-axis.
	Secondary bool
}

// Header holds the decoded five-line directive header.
type Header struct {
	// Title is the chart title, verbatim.
	Title string
	// XAxis is the x-axis title and range-slider flag.
	XAxis models.XAxis
	// YAxis is the primary and optional secondary y-axis title.
	YAxis models.YAxis
	// XColumn is the x column name from the column-title line.
	XColumn string
	// Columns are the data columns in order, x column excluded.
	Columns []ColumnSpec
	// Types is the reconciled chart-type list, one entry per data column.
	Types []models.ChartType
}

// ParseHeader decodes the five directive lines into a Header. The lines are
// validated first; each directive is then read with its marker stripped and
// surrounding whitespace trimmed.
func ParseHeader(lines []string, cfg Config) (*Header, error) {
	if err := ValidateHeader(lines); err != nil {
		return nil, err
	}

	stripped := make([]string, DirectiveLines)
	for i, line := range lines {
		stripped[i] = strings.TrimSpace(line[len(CommentMarker):])
	}

	h := &Header{
		Title: stripped[0],
		XAxis: parseXAxis(stripped[1]),
		YAxis: parseYAxis(stripped[2], cfg.Delimiter),
	}

	xcol, cols, err := parseColumns(stripped[4], cfg.Delimiter)
	if err != nil {
		return nil, &ParseError{Line: 5, Err: err}
	}
	h.XColumn = xcol
	h.Columns = cols

	types, err := parseTypeLine(stripped[3], cfg.Delimiter)
	if err != nil {
		return nil, &ParseError{Line: 4, Err: err}
	}
	h.Types, err = reconcileTypes(types, len(cols))
	if err != nil {
		return nil, &ParseError{Line: 4, Err: err}
	}

	return h, nil
}

// parseXAxis reads the x-axis directive. The sub-directive separator is only
// meaningful when the right-hand token is exactly the range-slider token;
// otherwise the whole string is the title.
func parseXAxis(s string) models.XAxis {
	parts := strings.Split(s, subDirectiveSep)
	if len(parts) == 2 && parts[1] == rangeSliderToken {
		return models.XAxis{Title: parts[0], RangeSlider: true}
	}
	return models.XAxis{Title: s}
}

// parseYAxis reads the y-axis directive: one token is the primary title, a
// second token is the secondary title. Extra tokens are ignored.
func parseYAxis(s, delim string) models.YAxis {
	parts := strings.Split(s, delim)
	y := models.YAxis{Primary: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		y.Secondary = strings.TrimSpace(parts[1])
	}
	return y
}

// parseTypeLine reads the chart-type directive. A single token is a
// broadcast type; a leading placeholder token introduces an explicit
// per-column list.
func parseTypeLine(s, delim string) ([]models.ChartType, error) {
	tokens := strings.Split(s, delim)
	if len(tokens) > 1 {
		if strings.TrimSpace(tokens[0]) != placeholderToken {
			return nil, fmt.Errorf("%w: multiple types require a leading %q",
				ErrBadTypeList, placeholderToken)
		}
		tokens = tokens[1:]
	}
	types := make([]models.ChartType, len(tokens))
	for i, tok := range tokens {
		t, err := models.ParseChartType(tok)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownChartType, strings.TrimSpace(tok))
		}
		types[i] = t
	}
	return types, nil
}

// reconcileTypes matches the chart-type list against the data column count.
// A single type is broadcast to every column; an explicit list must match
// the column count exactly.
func reconcileTypes(types []models.ChartType, ncols int) ([]models.ChartType, error) {
	switch {
	case len(types) == ncols:
		return types, nil
	case len(types) == 1:
		out := make([]models.ChartType, ncols)
		for i := range out {
			out[i] = types[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d types for %d data columns",
			ErrColumnCountMismatch, len(types), ncols)
	}
}

// parseColumns reads the column-title directive. The first token names the x
// column; the remaining tokens become ColumnSpecs with secondary-axis
// markers resolved.
func parseColumns(s, delim string) (string, []ColumnSpec, error) {
	tokens := strings.Split(s, delim)
	if len(tokens) < 2 {
		return "", nil, fmt.Errorf("%w: need an x column and at least one data column",
			ErrNoDataColumns)
	}
	xcol := strings.TrimSpace(tokens[0])
	cols := make([]ColumnSpec, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		name := strings.TrimSpace(tok)
		if name == secondaryMarker {
			return "", nil, fmt.Errorf("%w: bare %q", ErrInvalidColumnName, secondaryMarker)
		}
		col := ColumnSpec{Name: name}
		if strings.HasPrefix(name, secondaryMarker) {
			col = ColumnSpec{Name: name[len(secondaryMarker):], Secondary: true}
		}
		cols = append(cols, col)
	}
	return xcol, cols, nil
}
