package core

import (
	"github.com/huangsam/dashviz/schema"
)

// BuildRadarAction decides what happens to the radar host.
//
// The chart path never shows fallback text: a missing library, unparsable data and an
// empty mapping all end in a noop. Only the parse failure is reported, once, on the
// error channel.
func (p *Planner) BuildRadarAction(host schema.HostData, caps schema.Capabilities) schema.Action {
	if !host.Present {
		return schema.NoopFor(schema.RadarElementID, schema.ReasonHostAbsent)
	}
	if !caps.Chart {
		return schema.NoopFor(schema.RadarElementID, schema.ReasonChartUnavailable)
	}

	scores, err := ParseRoleScores(host.RawOr(schema.DefaultRoleScoresJSON))
	if err != nil {
		p.logger.WithError(err).Error("Error building radar chart")
		return schema.NoopFor(schema.RadarElementID, schema.ReasonInvalidScores)
	}
	if len(scores) == 0 {
		return schema.NoopFor(schema.RadarElementID, schema.ReasonNoScores)
	}

	labels := make([]string, len(scores))
	values := make([]float64, len(scores))
	for i, s := range scores {
		labels[i] = s.Label
		values[i] = s.Value
	}

	return schema.Action{
		Kind:      schema.MountChartAction,
		ElementID: schema.RadarElementID,
		Reason:    schema.ReasonRendered,
		Chart:     NewRadarChartConfig(labels, values, p.messages.RadarDatasetLabel()),
	}
}

// NewRadarChartConfig builds the fixed radar configuration around labels and values.
func NewRadarChartConfig(labels []string, values []float64, datasetLabel string) *schema.ChartConfig {
	return &schema.ChartConfig{
		Type: schema.RadarChartType,
		Data: schema.ChartData{
			Labels: labels,
			Datasets: []schema.RadarDataset{{
				Label:                     datasetLabel,
				Data:                      values,
				Fill:                      true,
				BackgroundColor:           schema.RadarFillColor,
				BorderColor:               schema.RadarLineColor,
				PointBackgroundColor:      schema.RadarLineColor,
				PointBorderColor:          schema.RadarPointWhite,
				PointHoverBackgroundColor: schema.RadarPointWhite,
				PointHoverBorderColor:     schema.RadarLineColor,
			}},
		},
		Options: schema.ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: schema.ChartScales{
				R: schema.RadialScale{
					BeginAtZero: true,
					Min:         schema.RadarScaleMin,
					Max:         schema.RadarScaleMax,
					Ticks:       schema.ScaleTicks{StepSize: schema.RadarTickStep},
					Grid:        schema.ScaleGrid{Circular: true},
				},
			},
			Plugins: schema.ChartPlugins{
				Legend: schema.LegendOptions{Display: false},
			},
		},
	}
}
