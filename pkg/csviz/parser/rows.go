package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeRows scans the data lines that follow the directive header. Blank
// lines are skipped, never terminating the scan. Every other line must split
// into exactly ncols+1 fields; the first coerced field joins the shared x
// sequence and the rest form the row's data values.
func DecodeRows(lines []string, ncols int, cfg Config) (x []interface{}, rows [][]interface{}, err error) {
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Split(line, cfg.Delimiter)
		if len(fields) != ncols+1 {
			return nil, nil, &ParseError{
				Line: DirectiveLines + i + 1,
				Err:  fmt.Errorf("%w: got %d fields, want %d", ErrRowShape, len(fields), ncols+1),
			}
		}
		row := make([]interface{}, len(fields))
		for j, field := range fields {
			row[j] = CoerceValue(strings.TrimSpace(field))
		}
		x = append(x, row[0])
		rows = append(rows, row[1:])
	}
	return x, rows, nil
}

// CoerceValue converts a field literal to a number where possible. A plain
// decimal literal becomes a float64 when it contains a decimal point and an
// int64 otherwise; anything else passes through as the original string, so
// "3" -> int64(3), "3.0" -> float64(3.0), "1.2.3" -> "1.2.3" and
// "1e5" -> "1e5".
func CoerceValue(s string) interface{} {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if strings.Contains(s, ".") {
		return f
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return i
}
