package core

import (
	"github.com/huangsam/dashviz/schema"
)

// BuildWordCloudAction decides what happens to the word-cloud host.
//
// Unlike the radar path, a missing library or an empty keyword list replaces the
// host's content with fallback text. Unparsable keywords are logged and then treated
// as an empty list.
func (p *Planner) BuildWordCloudAction(host schema.HostData, caps schema.Capabilities) schema.Action {
	if !host.Present {
		return schema.NoopFor(schema.WordCloudElementID, schema.ReasonHostAbsent)
	}
	if !caps.WordCloud {
		return schema.TextFor(schema.WordCloudElementID, schema.ReasonWordCloudUnavailable, p.messages.WordCloudNotLoaded())
	}

	keywords, err := ParseKeywords(host.RawOr(schema.DefaultKeywordsJSON))
	if err != nil {
		p.logger.WithError(err).Error("Error parsing keywords for wordcloud")
		keywords = nil
	}
	if len(keywords) == 0 {
		return schema.TextFor(schema.WordCloudElementID, schema.ReasonNoKeywords, p.messages.WordCloudNotEnoughKeywords())
	}

	return schema.Action{
		Kind:      schema.MountWordCloudAction,
		ElementID: schema.WordCloudElementID,
		Reason:    schema.ReasonRendered,
		WordCloud: p.newWordCloudConfig(WeightKeywords(keywords)),
	}
}

// newWordCloudConfig builds the fixed layout around the weighted list and draws
// one colour per word, independently.
func (p *Planner) newWordCloudConfig(list []schema.WeightedKeyword) *schema.WordCloudConfig {
	palette := schema.PaletteCopy()
	colors := make([]string, len(list))
	for i := range list {
		colors[i] = p.drawColor(palette)
	}
	return &schema.WordCloudConfig{
		List:            list,
		GridSize:        schema.WordCloudGridSize,
		WeightFactor:    schema.WordCloudWeightFactor,
		ShrinkToFit:     true,
		BackgroundColor: schema.WordCloudTransparentBg,
		Palette:         palette,
		Colors:          colors,
	}
}
