// Package messages holds the fixed user-facing strings of the dashboard.
package messages

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	WordCloudNotLoadedID         = "WordCloudNotLoaded"
	WordCloudNotEnoughKeywordsID = "WordCloudNotEnoughKeywords"
	RadarDatasetLabelID          = "RadarDatasetLabel"
)

// catalog is the only language the dashboard ships with.
var catalog = []*i18n.Message{
	{ID: WordCloudNotLoadedID, Other: "Library word cloud belum termuat."},
	{ID: WordCloudNotEnoughKeywordsID, Other: "Tidak ada keyword yang cukup untuk word cloud."},
	{ID: RadarDatasetLabelID, Other: "Kecocokan per Role (%)"},
}

// Catalog resolves message IDs to display strings.
type Catalog struct {
	localizer *i18n.Localizer
}

// New builds the catalog.
func New() (*Catalog, error) {
	bundle := i18n.NewBundle(language.Indonesian)
	if err := bundle.AddMessages(language.Indonesian, catalog...); err != nil {
		return nil, fmt.Errorf("failed to load message catalog: %w", err)
	}
	return &Catalog{localizer: i18n.NewLocalizer(bundle, language.Indonesian.String())}, nil
}

// MustNew is New for package-level defaults; the catalog is static so it cannot fail at runtime.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the string for id, or id itself when it is unknown.
func (c *Catalog) Get(id string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// WordCloudNotLoaded is shown when the word-cloud library is missing.
func (c *Catalog) WordCloudNotLoaded() string { return c.Get(WordCloudNotLoadedID) }

// WordCloudNotEnoughKeywords is shown when there is nothing to draw.
func (c *Catalog) WordCloudNotEnoughKeywords() string { return c.Get(WordCloudNotEnoughKeywordsID) }

// RadarDatasetLabel names the radar dataset.
func (c *Catalog) RadarDatasetLabel() string { return c.Get(RadarDatasetLabelID) }
