package models

// ChartSeries represents series metadata for a spreadsheet chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for X axis values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty"`
}

// ChartHint is chart metadata found in a workbook drawing. It seeds the
// block kind and titles when a grid is imported from a spreadsheet.
type ChartHint struct {
	// Name is the drawing object name.
	Name string `json:"name"`
	// Kind is the closest supported chart kind, empty when unsupported.
	Kind Kind `json:"kind,omitempty"`
	// SourceType is the OOXML plot element name (e.g. barChart).
	SourceType string `json:"source_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxisTitle is the category axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// Orientation is "h" or "v" for bar charts, empty for other plots.
	Orientation string `json:"orientation,omitempty"`
	// W is the chart width in pixels.
	W int `json:"w"`
	// H is the chart height in pixels.
	H int `json:"h"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series,omitempty"`
}
