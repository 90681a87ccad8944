package schema

// Action is one step of a render plan, bound to a single host element.
type Action struct {
	Kind      ActionKind       `json:"kind"`
	ElementID string           `json:"elementId"`
	Reason    Reason           `json:"reason"`
	Chart     *ChartConfig     `json:"chart,omitempty"`
	WordCloud *WordCloudConfig `json:"wordcloud,omitempty"`
	Message   string           `json:"message,omitempty"`
}

// RenderPlan holds one action per target.
type RenderPlan struct {
	Radar     Action `json:"radar"`
	WordCloud Action `json:"wordcloud"`
}

// Actions returns the actions in execution order.
func (p RenderPlan) Actions() []Action {
	return []Action{p.Radar, p.WordCloud}
}

// NoopFor returns a noop action for the element.
func NoopFor(elementID string, reason Reason) Action {
	return Action{Kind: NoopAction, ElementID: elementID, Reason: reason}
}

// TextFor returns a show_text action for the element.
func TextFor(elementID string, reason Reason, message string) Action {
	return Action{Kind: ShowTextAction, ElementID: elementID, Reason: reason, Message: message}
}
