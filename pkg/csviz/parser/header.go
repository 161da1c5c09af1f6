// Package parser implements the directive-header and row parsing pipeline
// that turns dataset lines into a chart specification.
package parser

import (
	"fmt"
	"strings"
)

// DirectiveLines is the number of directive lines at the top of a dataset:
// chart title, x-axis, y-axis, chart types, column titles.
const DirectiveLines = 5

// CommentMarker prefixes every directive line.
const CommentMarker = "#"

// Config controls how directive and data lines are split into fields.
type Config struct {
	// Delimiter is the field delimiter on directive and data lines.
	Delimiter string
}

// ValidateHeader checks that lines are exactly the five directive lines of a
// dataset: each non-empty, starting with the comment marker, with at least
// one character after it.
func ValidateHeader(lines []string) error {
	if len(lines) != DirectiveLines {
		return fmt.Errorf("%w: expected %d directive lines, got %d",
			ErrMalformedHeader, DirectiveLines, len(lines))
	}
	for i, line := range lines {
		if line == "" {
			return &ParseError{Line: i + 1, Err: fmt.Errorf("%w: empty directive line", ErrMalformedHeader)}
		}
		if !strings.HasPrefix(line, CommentMarker) {
			return &ParseError{Line: i + 1, Err: fmt.Errorf("%w: missing %q marker", ErrMalformedHeader, CommentMarker)}
		}
		if len(line) <= len(CommentMarker) {
			return &ParseError{Line: i + 1, Err: fmt.Errorf("%w: empty directive", ErrMalformedHeader)}
		}
	}
	return nil
}
