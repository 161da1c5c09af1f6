package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedHeader indicates a directive line is missing, empty, or does
// not start with the comment marker.
var ErrMalformedHeader = errors.New("malformed header")

// ErrUnknownChartType indicates a chart-type tag outside the supported set.
var ErrUnknownChartType = errors.New("unknown chart type")

// ErrBadTypeList indicates a chart-type line with an illegal shape, such as
// multiple types without the leading placeholder token.
var ErrBadTypeList = errors.New("bad chart type list")

// ErrColumnCountMismatch indicates the chart-type list and the data columns
// could not be reconciled.
var ErrColumnCountMismatch = errors.New("column/type count mismatch")

// ErrNoDataColumns indicates the column-title line names fewer than one data
// column besides the x column.
var ErrNoDataColumns = errors.New("no data columns")

// ErrInvalidColumnName indicates a column title that is exactly the
// secondary-axis marker, or empty after stripping it.
var ErrInvalidColumnName = errors.New("invalid column name")

// ErrRowShape indicates a data row whose field count does not match the
// column count established by the header.
var ErrRowShape = errors.New("row shape mismatch")

// ErrMissingSecondaryAxis indicates a column routed to the secondary axis
// while the y-axis directive configures no secondary title.
var ErrMissingSecondaryAxis = errors.New("secondary axis not configured")

// ParseError reports a parse failure at a specific source line.
type ParseError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Err is the underlying failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
