package schema

// ChartConfig is the second argument of the Chart.js constructor.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData holds the axis labels and datasets.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []RadarDataset `json:"datasets"`
}

// RadarDataset is a single radar series with its styling.
type RadarDataset struct {
	Label                     string    `json:"label"`
	Data                      []float64 `json:"data"`
	Fill                      bool      `json:"fill"`
	BackgroundColor           string    `json:"backgroundColor"`
	BorderColor               string    `json:"borderColor"`
	PointBackgroundColor      string    `json:"pointBackgroundColor"`
	PointBorderColor          string    `json:"pointBorderColor"`
	PointHoverBackgroundColor string    `json:"pointHoverBackgroundColor"`
	PointHoverBorderColor     string    `json:"pointHoverBorderColor"`
}

// ChartOptions are the top-level Chart.js options.
type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Scales              ChartScales  `json:"scales"`
	Plugins             ChartPlugins `json:"plugins"`
}

// ChartScales holds the radial scale.
type ChartScales struct {
	R RadialScale `json:"r"`
}

// RadialScale fixes the radar axis range and grid.
type RadialScale struct {
	BeginAtZero bool       `json:"beginAtZero"`
	Min         float64    `json:"min"`
	Max         float64    `json:"max"`
	Ticks       ScaleTicks `json:"ticks"`
	Grid        ScaleGrid  `json:"grid"`
}

// ScaleTicks sets the tick step.
type ScaleTicks struct {
	StepSize float64 `json:"stepSize"`
}

// ScaleGrid toggles circular grid lines.
type ScaleGrid struct {
	Circular bool `json:"circular"`
}

// ChartPlugins configures built-in plugins.
type ChartPlugins struct {
	Legend LegendOptions `json:"legend"`
}

// LegendOptions toggles the legend.
type LegendOptions struct {
	Display bool `json:"display"`
}
