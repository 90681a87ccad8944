package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStrings(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Library word cloud belum termuat.", c.WordCloudNotLoaded())
	assert.Equal(t, "Tidak ada keyword yang cukup untuk word cloud.", c.WordCloudNotEnoughKeywords())
	assert.Equal(t, "Kecocokan per Role (%)", c.RadarDatasetLabel())
}

func TestCatalogUnknownID(t *testing.T) {
	c := MustNew()
	assert.Equal(t, "NoSuchMessage", c.Get("NoSuchMessage"))
}
