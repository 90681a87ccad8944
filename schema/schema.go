// Package schema has the models and constants shared by every part of dashviz.
package schema

// HostData describes one host element on the dashboard page.
// An empty Attr means the data attribute is absent or empty.
type HostData struct {
	Present bool   `json:"present"`
	Attr    string `json:"attr,omitempty"`
}

// PageData is everything the planner reads from the page.
type PageData struct {
	Radar     HostData `json:"radar"`
	WordCloud HostData `json:"wordcloud"`
}

// Capabilities records which rendering libraries are loaded on the page.
type Capabilities struct {
	Chart     bool `json:"chart"`
	WordCloud bool `json:"wordcloud"`
}

// RawOr returns the attribute text, or def when it is absent or empty.
func (h HostData) RawOr(def string) string {
	if h.Attr == "" {
		return def
	}
	return h.Attr
}

// RadarRaw returns the role-scores JSON, falling back to the default literal.
func (p PageData) RadarRaw() string {
	return p.Radar.RawOr(DefaultRoleScoresJSON)
}

// WordCloudRaw returns the keywords JSON, falling back to the default literal.
func (p PageData) WordCloudRaw() string {
	return p.WordCloud.RawOr(DefaultKeywordsJSON)
}

// RoleScore is one entry of the role-score mapping after coercion.
type RoleScore struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
