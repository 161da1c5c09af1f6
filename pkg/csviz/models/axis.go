package models

import (
	"encoding/json"
	"fmt"
)

// Axis selects which y-axis a series is drawn against.
type Axis int

const (
	// AxisPrimary routes a series to the primary y-axis.
	AxisPrimary Axis = iota
	// AxisSecondary routes a series to the secondary y-axis.
	AxisSecondary
)

// String returns "primary" or "secondary".
func (a Axis) String() string {
	if a == AxisSecondary {
		return "secondary"
	}
	return "primary"
}

// MarshalJSON encodes the axis routing as "primary" or "secondary".
func (a Axis) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes the axis routing from its name.
func (a *Axis) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "primary":
		*a = AxisPrimary
	case "secondary":
		*a = AxisSecondary
	default:
		return fmt.Errorf("unknown axis %q", name)
	}
	return nil
}

// XAxis describes the x-axis of a chart.
type XAxis struct {
	// Title is the axis title.
	Title string `json:"title"`
	// RangeSlider reports whether the axis requests a range slider.
	RangeSlider bool `json:"range_slider,omitempty"`
}

// YAxis describes the y-axes of a chart.
type YAxis struct {
	// Primary is the primary y-axis title.
	Primary string `json:"primary"`
	// Secondary is the secondary y-axis title (empty when no series uses it).
	Secondary string `json:"secondary,omitempty"`
}
