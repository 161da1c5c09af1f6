package output

import "github.com/csviz/csviz-go/pkg/csviz/models"

// Figure is a plotly-style figure document: a trace list plus layout. It is
// what a rendering collaborator consumes; no pixels or HTML are produced
// here.
type Figure struct {
	// Data is the ordered trace list.
	Data []Trace `json:"data"`
	// Layout carries the chart and axis metadata.
	Layout Layout `json:"layout"`
}

// Trace is one renderable series.
type Trace struct {
	// Type is the plotly trace type ("scatter" or "bar").
	Type string `json:"type"`
	// Mode is the scatter draw mode ("lines" or "markers").
	Mode string `json:"mode,omitempty"`
	// Name is the series display name.
	Name string `json:"name"`
	// X holds the shared x values.
	X []interface{} `json:"x"`
	// Y holds the series values.
	Y []interface{} `json:"y"`
	// YAxis is "y2" for series drawn against the secondary axis.
	YAxis string `json:"yaxis,omitempty"`
}

// Layout carries chart title and axis layout.
type Layout struct {
	// Title is the chart title.
	Title string `json:"title"`
	// BarMode is "group" when the figure contains bar traces.
	BarMode string `json:"barmode,omitempty"`
	// XAxis is the x-axis layout.
	XAxis AxisLayout `json:"xaxis"`
	// YAxis is the primary y-axis layout.
	YAxis AxisLayout `json:"yaxis"`
	// YAxis2 is the secondary y-axis layout, present only when used.
	YAxis2 *AxisLayout `json:"yaxis2,omitempty"`
}

// AxisLayout describes one axis in the layout.
type AxisLayout struct {
	// Title is the axis title.
	Title string `json:"title"`
	// RangeSlider enables the x-axis range slider when present.
	RangeSlider *RangeSlider `json:"rangeslider,omitempty"`
	// Overlaying is "y" for a secondary axis drawn over the primary.
	Overlaying string `json:"overlaying,omitempty"`
	// Side places a secondary axis on the right.
	Side string `json:"side,omitempty"`
}

// RangeSlider is the x-axis range-slider toggle.
type RangeSlider struct {
	Visible bool `json:"visible"`
}

// traceStyle maps a chart type to its plotly trace type and mode. The
// mapping is exhaustive over the closed chart-type set.
func traceStyle(t models.ChartType) (typ, mode string) {
	switch t {
	case models.Bar:
		return "bar", ""
	case models.Scatter:
		return "scatter", "markers"
	default:
		return "scatter", "lines"
	}
}

// ToFigure maps a chart specification onto a figure document: one trace per
// series, grouped bar mode when any bar trace is present, a right-hand
// overlay axis when any series routes to the secondary axis, and the
// range-slider toggle from the x-axis metadata.
func ToFigure(spec *models.ChartSpec) *Figure {
	fig := &Figure{
		Data: make([]Trace, 0, len(spec.Series)),
		Layout: Layout{
			Title: spec.Title,
			XAxis: AxisLayout{Title: spec.XAxis.Title},
			YAxis: AxisLayout{Title: spec.YAxis.Primary},
		},
	}
	if spec.XAxis.RangeSlider {
		fig.Layout.XAxis.RangeSlider = &RangeSlider{Visible: true}
	}
	for _, s := range spec.Series {
		typ, mode := traceStyle(s.Type)
		if typ == "bar" {
			fig.Layout.BarMode = "group"
		}
		tr := Trace{
			Type: typ,
			Mode: mode,
			Name: s.Title,
			X:    s.X,
			Y:    s.Y,
		}
		if s.Axis == models.AxisSecondary {
			tr.YAxis = "y2"
		}
		fig.Data = append(fig.Data, tr)
	}
	if spec.YAxis.Secondary != "" {
		fig.Layout.YAxis2 = &AxisLayout{
			Title:      spec.YAxis.Secondary,
			Overlaying: "y",
			Side:       "right",
		}
	}
	return fig
}
