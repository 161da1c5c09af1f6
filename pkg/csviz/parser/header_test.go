package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeader(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		valid bool
	}{
		{
			name:  "well-formed header",
			lines: []string{"#Requests", "#minute", "#count", "#lines", "#min,req"},
			valid: true,
		},
		{
			name:  "too few lines",
			lines: []string{"#Requests", "#minute"},
			valid: false,
		},
		{
			name:  "empty line",
			lines: []string{"#Requests", "", "#count", "#lines", "#min,req"},
			valid: false,
		},
		{
			name:  "missing marker",
			lines: []string{"#Requests", "minute", "#count", "#lines", "#min,req"},
			valid: false,
		},
		{
			name:  "marker only",
			lines: []string{"#Requests", "#", "#count", "#lines", "#min,req"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeader(tt.lines)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMalformedHeader)
			}
		})
	}
}

func TestValidateHeaderReportsLine(t *testing.T) {
	lines := []string{"#Requests", "#minute", "count", "#lines", "#min,req"}
	err := ValidateHeader(lines)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
}
