// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/huangsam/dashviz/schema"
)

// Renderer executes render actions against a concrete target.
// This allows the plan execution logic to be tested without a real page.
type Renderer interface {
	// MountChart mounts a chart built from cfg onto the element.
	MountChart(elementID string, cfg *schema.ChartConfig) error

	// MountWordCloud mounts a word cloud built from cfg onto the element.
	MountWordCloud(elementID string, cfg *schema.WordCloudConfig) error

	// ShowText replaces the element's content with a status message.
	ShowText(elementID string, message string) error
}

// ColorPicker returns a uniformly random index in [0, n).
type ColorPicker func(n int) int
