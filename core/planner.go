package core

import (
	"math/rand/v2"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/messages"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
)

// Planner turns page data and library capabilities into a RenderPlan.
// It holds no per-page state, so planning the same page twice yields two
// independent plans.
type Planner struct {
	logger   logrus.FieldLogger
	pick     contract.ColorPicker
	messages *messages.Catalog
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithLogger sets the error channel.
func WithLogger(logger logrus.FieldLogger) PlannerOption {
	return func(p *Planner) { p.logger = logger }
}

// WithColorPicker replaces the random colour source, mostly for tests.
func WithColorPicker(pick contract.ColorPicker) PlannerOption {
	return func(p *Planner) { p.pick = pick }
}

// WithMessages sets the message catalog.
func WithMessages(c *messages.Catalog) PlannerOption {
	return func(p *Planner) { p.messages = c }
}

// NewPlanner creates a Planner. By default it logs to the standard logrus logger
// and draws colours from an unseeded random source.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		logger:   logrus.StandardLogger(),
		pick:     rand.IntN,
		messages: messages.MustNew(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan builds one action for the radar host and one for the word-cloud host.
// The two are independent; neither can fail the other.
func (p *Planner) Plan(page schema.PageData, caps schema.Capabilities) schema.RenderPlan {
	return schema.RenderPlan{
		Radar:     p.BuildRadarAction(page.Radar, caps),
		WordCloud: p.BuildWordCloudAction(page.WordCloud, caps),
	}
}

// drawColor picks one palette entry, tolerating pickers that stray out of range.
func (p *Planner) drawColor(palette []string) string {
	n := len(palette)
	idx := p.pick(n)
	if idx < 0 || idx >= n {
		idx = ((idx % n) + n) % n
	}
	return palette[idx]
}
