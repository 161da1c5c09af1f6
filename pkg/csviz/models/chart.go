// Package models defines data structures for chart specifications.
package models

// Series is one plotted data column paired with the shared x values.
// A series is created once per load and is immutable afterwards.
type Series struct {
	// Title is the series display name.
	Title string `json:"title"`
	// Axis is the y-axis the series is drawn against.
	Axis Axis `json:"axis"`
	// Type is the rendering primitive for the series.
	Type ChartType `json:"type"`
	// X holds the shared x values (int64, float64, or string).
	X []interface{} `json:"x"`
	// Y holds the series values, aligned 1:1 with X.
	Y []interface{} `json:"y"`
}

// ChartSpec is the terminal artifact of a dataset load: chart title, axis
// metadata, and the ordered series list. The caller owns the returned
// specification.
type ChartSpec struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XAxis is the x-axis metadata.
	XAxis XAxis `json:"x_axis"`
	// YAxis is the y-axis metadata.
	YAxis YAxis `json:"y_axis"`
	// Series is the ordered list of plotted series.
	Series []Series `json:"series"`
}
