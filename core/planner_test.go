package core

import (
	"testing"

	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLibraries = schema.Capabilities{Chart: true, WordCloud: true}

// sequencePicker returns the given indices in order, cycling when exhausted.
func sequencePicker(indices ...int) func(int) int {
	i := 0
	return func(int) int {
		v := indices[i%len(indices)]
		i++
		return v
	}
}

func newTestPlanner(t *testing.T, picks ...int) (*Planner, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	if len(picks) == 0 {
		picks = []int{0}
	}
	return NewPlanner(WithLogger(logger), WithColorPicker(sequencePicker(picks...))), hook
}

func host(attr string) schema.HostData {
	return schema.HostData{Present: true, Attr: attr}
}

func TestBuildRadarActionMountsChart(t *testing.T) {
	p, hook := newTestPlanner(t)
	action := p.BuildRadarAction(host(`{"data_analyst": 72, "pm": 0}`), allLibraries)

	assert.Equal(t, schema.MountChartAction, action.Kind)
	assert.Equal(t, schema.RadarElementID, action.ElementID)
	assert.Equal(t, schema.ReasonRendered, action.Reason)
	require.NotNil(t, action.Chart)
	assert.Nil(t, action.WordCloud)
	assert.Empty(t, hook.AllEntries())

	chart := action.Chart
	assert.Equal(t, "radar", chart.Type)
	assert.Equal(t, []string{"Data Analyst", "Pm"}, chart.Data.Labels)
	require.Len(t, chart.Data.Datasets, 1)

	ds := chart.Data.Datasets[0]
	assert.Equal(t, "Kecocokan per Role (%)", ds.Label)
	assert.Equal(t, []float64{72, 0}, ds.Data)
	assert.True(t, ds.Fill)
	assert.Equal(t, "rgba(37, 99, 235, 0.20)", ds.BackgroundColor)
	assert.Equal(t, "rgba(37, 99, 235, 1)", ds.BorderColor)
	assert.Equal(t, "rgba(37, 99, 235, 1)", ds.PointBackgroundColor)
	assert.Equal(t, "#fff", ds.PointBorderColor)

	opts := chart.Options
	assert.True(t, opts.Responsive)
	assert.False(t, opts.MaintainAspectRatio)
	assert.False(t, opts.Plugins.Legend.Display)
	assert.True(t, opts.Scales.R.BeginAtZero)
	assert.Equal(t, 0.0, opts.Scales.R.Min)
	assert.Equal(t, 100.0, opts.Scales.R.Max)
	assert.Equal(t, 20.0, opts.Scales.R.Ticks.StepSize)
	assert.True(t, opts.Scales.R.Grid.Circular)
}

func TestBuildRadarActionNoops(t *testing.T) {
	tests := []struct {
		name   string
		host   schema.HostData
		caps   schema.Capabilities
		reason schema.Reason
		errors int
	}{
		{"host absent", schema.HostData{}, allLibraries, schema.ReasonHostAbsent, 0},
		{"host absent with bad data", schema.HostData{Attr: "{"}, allLibraries, schema.ReasonHostAbsent, 0},
		{"library absent", host(`{"pm": 10}`), schema.Capabilities{WordCloud: true}, schema.ReasonChartUnavailable, 0},
		{"library absent with bad data", host(`{`), schema.Capabilities{}, schema.ReasonChartUnavailable, 0},
		{"empty mapping", host(`{}`), allLibraries, schema.ReasonNoScores, 0},
		{"attribute absent", host(""), allLibraries, schema.ReasonNoScores, 0},
		{"malformed json", host(`{"pm": `), allLibraries, schema.ReasonInvalidScores, 1},
		{"null", host(`null`), allLibraries, schema.ReasonInvalidScores, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, hook := newTestPlanner(t)
			action := p.BuildRadarAction(tt.host, tt.caps)

			assert.Equal(t, schema.NoopAction, action.Kind)
			assert.Equal(t, tt.reason, action.Reason)
			assert.Nil(t, action.Chart)
			assert.Empty(t, action.Message)
			assert.Len(t, hook.AllEntries(), tt.errors)
		})
	}
}

func TestBuildRadarActionLogsParseError(t *testing.T) {
	p, hook := newTestPlanner(t)
	p.BuildRadarAction(host(`not json`), allLibraries)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Error building radar chart", entry.Message)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), ErrInvalidJSON)
}

func TestBuildWordCloudActionMountsCloud(t *testing.T) {
	p, hook := newTestPlanner(t, 2, 5, 0)
	action := p.BuildWordCloudAction(host(`["ai","cloud","security"]`), allLibraries)

	assert.Equal(t, schema.MountWordCloudAction, action.Kind)
	assert.Equal(t, schema.WordCloudElementID, action.ElementID)
	require.NotNil(t, action.WordCloud)
	assert.Empty(t, hook.AllEntries())

	wc := action.WordCloud
	assert.Equal(t, []schema.WeightedKeyword{
		{Text: "ai", Weight: 13},
		{Text: "cloud", Weight: 12},
		{Text: "security", Weight: 11},
	}, wc.List)
	assert.Equal(t, 10, wc.GridSize)
	assert.Equal(t, 2, wc.WeightFactor)
	assert.True(t, wc.ShrinkToFit)
	assert.Equal(t, "rgba(0,0,0,0)", wc.BackgroundColor)
	assert.Equal(t, schema.WordCloudPalette, wc.Palette)
	assert.Equal(t, []string{"#0f766e", "#be123c", "#1d4ed8"}, wc.Colors)
}

func TestBuildWordCloudActionColorsFromPalette(t *testing.T) {
	p := NewPlanner(WithLogger(logrus.New()))
	action := p.BuildWordCloudAction(host(`["a","b","c","d","e","f","g","h"]`), allLibraries)

	require.NotNil(t, action.WordCloud)
	require.Len(t, action.WordCloud.Colors, 8)
	for _, c := range action.WordCloud.Colors {
		assert.Contains(t, schema.WordCloudPalette, c)
	}
}

func TestBuildWordCloudActionWrapsOutOfRangePicks(t *testing.T) {
	p, _ := newTestPlanner(t, 7, -1)
	action := p.BuildWordCloudAction(host(`["a","b"]`), allLibraries)

	require.NotNil(t, action.WordCloud)
	assert.Equal(t, []string{"#2563eb", "#be123c"}, action.WordCloud.Colors)
}

func TestBuildWordCloudActionFallbacks(t *testing.T) {
	const notLoaded = "Library word cloud belum termuat."
	const notEnough = "Tidak ada keyword yang cukup untuk word cloud."

	tests := []struct {
		name    string
		host    schema.HostData
		caps    schema.Capabilities
		kind    schema.ActionKind
		reason  schema.Reason
		message string
		errors  int
	}{
		{"host absent", schema.HostData{}, allLibraries, schema.NoopAction, schema.ReasonHostAbsent, "", 0},
		{"host absent and library absent", schema.HostData{}, schema.Capabilities{}, schema.NoopAction, schema.ReasonHostAbsent, "", 0},
		{"library absent", host(`["ai"]`), schema.Capabilities{Chart: true}, schema.ShowTextAction, schema.ReasonWordCloudUnavailable, notLoaded, 0},
		{"library absent ignores bad data", host(`[`), schema.Capabilities{}, schema.ShowTextAction, schema.ReasonWordCloudUnavailable, notLoaded, 0},
		{"empty list", host(`[]`), allLibraries, schema.ShowTextAction, schema.ReasonNoKeywords, notEnough, 0},
		{"attribute absent", host(""), allLibraries, schema.ShowTextAction, schema.ReasonNoKeywords, notEnough, 0},
		{"not an array", host(`{"ai": 1}`), allLibraries, schema.ShowTextAction, schema.ReasonNoKeywords, notEnough, 0},
		{"malformed json", host(`["ai",`), allLibraries, schema.ShowTextAction, schema.ReasonNoKeywords, notEnough, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, hook := newTestPlanner(t)
			action := p.BuildWordCloudAction(tt.host, tt.caps)

			assert.Equal(t, tt.kind, action.Kind)
			assert.Equal(t, tt.reason, action.Reason)
			assert.Equal(t, tt.message, action.Message)
			assert.Nil(t, action.WordCloud)
			assert.Len(t, hook.AllEntries(), tt.errors)
		})
	}
}

func TestBuildWordCloudActionLogsParseError(t *testing.T) {
	p, hook := newTestPlanner(t)
	p.BuildWordCloudAction(host(`oops`), allLibraries)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "Error parsing keywords for wordcloud", hook.LastEntry().Message)
}

func TestPlanFlowsAreIndependent(t *testing.T) {
	p, hook := newTestPlanner(t)
	page := schema.PageData{
		Radar:     host(`{bad`),
		WordCloud: host(`["ai"]`),
	}
	plan := p.Plan(page, allLibraries)

	assert.Equal(t, schema.NoopAction, plan.Radar.Kind)
	assert.Equal(t, schema.MountWordCloudAction, plan.WordCloud.Kind)
	assert.Len(t, hook.AllEntries(), 1)

	actions := plan.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, schema.RadarElementID, actions[0].ElementID)
	assert.Equal(t, schema.WordCloudElementID, actions[1].ElementID)
}

func TestPlanTwiceIsIndependent(t *testing.T) {
	p, _ := newTestPlanner(t, 1)
	page := schema.PageData{
		Radar:     host(`{"pm": 50}`),
		WordCloud: host(`["ai","go"]`),
	}

	first := p.Plan(page, allLibraries)
	second := p.Plan(page, allLibraries)

	assert.Equal(t, first, second)
	assert.NotSame(t, first.Radar.Chart, second.Radar.Chart)
	assert.NotSame(t, first.WordCloud.WordCloud, second.WordCloud.WordCloud)

	// Mutating one plan must not leak into the other.
	first.WordCloud.WordCloud.Palette[0] = "#000000"
	assert.Equal(t, "#1d4ed8", second.WordCloud.WordCloud.Palette[0])
	assert.Equal(t, "#1d4ed8", schema.WordCloudPalette[0])
}

func TestNewPlannerDefaults(t *testing.T) {
	p := NewPlanner()
	assert.Equal(t, logrus.StandardLogger(), p.logger)
	require.NotNil(t, p.pick)
	require.NotNil(t, p.messages)
	for range 100 {
		idx := p.pick(6)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 6)
	}
}
