// Package output serializes chart specifications and figure documents.
package output

import (
	"encoding/json"

	"github.com/csviz/csviz-go/pkg/csviz/models"
)

// ToJSON encodes a chart specification as JSON.
func ToJSON(spec *models.ChartSpec, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}

// FigureToJSON encodes a figure document as JSON.
func FigureToJSON(fig *Figure, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(fig, "", "  ")
	}
	return json.Marshal(fig)
}
