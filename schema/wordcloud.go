package schema

import (
	"encoding/json"
	"fmt"
)

// WeightedKeyword is a keyword paired with its synthetic size weight.
// It marshals to the [text, weight] pair wordcloud2 expects.
type WeightedKeyword struct {
	Text   string
	Weight int
}

// MarshalJSON encodes the keyword as a two-element array.
func (k WeightedKeyword) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Text, k.Weight})
}

// UnmarshalJSON decodes a [text, weight] pair.
func (k *WeightedKeyword) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("weighted keyword must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &k.Text); err != nil {
		return fmt.Errorf("weighted keyword text: %w", err)
	}
	if err := json.Unmarshal(pair[1], &k.Weight); err != nil {
		return fmt.Errorf("weighted keyword weight: %w", err)
	}
	return nil
}

// WordCloudConfig is the options argument of the WordCloud call.
// Colors[i] is the palette colour drawn for List[i].
type WordCloudConfig struct {
	List            []WeightedKeyword `json:"list"`
	GridSize        int               `json:"gridSize"`
	WeightFactor    int               `json:"weightFactor"`
	ShrinkToFit     bool              `json:"shrinkToFit"`
	BackgroundColor string            `json:"backgroundColor"`
	Palette         []string          `json:"palette"`
	Colors          []string          `json:"colors"`
}
