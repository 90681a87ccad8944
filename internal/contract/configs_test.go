package contract

import (
	"testing"

	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    "text",
		Precision: DefaultPrecision,
		Color:     "yes",
		ChartLib:  "auto",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "json output", mutate: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", mutate: func(in *ConfigRawInput) {
			in.Output = "parquet"
			in.OutputFile = "plan.parquet"
		}},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = 9 }, expectError: true},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "invalid chart lib", mutate: func(in *ConfigRawInput) { in.ChartLib = "sometimes" }, expectError: true},
		{name: "invalid wordcloud lib", mutate: func(in *ConfigRawInput) { in.WordCloudLib = "?" }, expectError: true},
		{name: "invalid chart pattern", mutate: func(in *ConfigRawInput) { in.ChartPattern = "(" }, expectError: true},
		{name: "invalid wordcloud pattern", mutate: func(in *ConfigRawInput) { in.WordCloudPattern = "[" }, expectError: true},
		{name: "invalid log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "loud" }, expectError: true},
		{name: "invalid log format", mutate: func(in *ConfigRawInput) { in.LogFormat = "xml" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	input.InputFile = "dashboard.html"
	input.CORSOrigins = " http://localhost:3000 ,, https://cv.example.com"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "dashboard.html", cfg.InputFile)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.AutoLibrary, cfg.ChartLib)
	assert.Equal(t, schema.AutoLibrary, cfg.WordCloudLib)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:3000", "https://cv.example.com"}, cfg.CORSOrigins)
	require.NotNil(t, cfg.Patterns.Chart)
	require.NotNil(t, cfg.Patterns.WordCloud)
}

func TestDefaultLibraryPatterns(t *testing.T) {
	p := DefaultLibraryPatterns()

	chartHits := []string{
		"https://cdn.jsdelivr.net/npm/chart.js",
		"/static/js/chart.umd.min.js",
		"chart.min.js?v=4",
		"Chart.js",
	}
	for _, src := range chartHits {
		assert.True(t, p.Chart.MatchString(src), src)
	}
	assert.False(t, p.Chart.MatchString("/static/js/dashboard.js"))
	assert.False(t, p.Chart.MatchString("/static/js/piechart.js"))

	assert.True(t, p.WordCloud.MatchString("https://cdnjs.cloudflare.com/ajax/libs/wordcloud2.js/1.2.2/wordcloud2.min.js"))
	assert.True(t, p.WordCloud.MatchString("wordcloud2.js"))
	assert.False(t, p.WordCloud.MatchString("/static/js/chart.js"))
}

func TestParseLibraryMode(t *testing.T) {
	tests := []struct {
		input    string
		expected schema.LibraryMode
		wantErr  bool
	}{
		{"", schema.AutoLibrary, false},
		{"AUTO", schema.AutoLibrary, false},
		{"yes", schema.YesLibrary, false},
		{"1", schema.YesLibrary, false},
		{"false", schema.NoLibrary, false},
		{"perhaps", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLibraryMode(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestResolveCapabilities(t *testing.T) {
	detected := schema.Capabilities{Chart: true, WordCloud: false}

	assert.Equal(t, detected, ResolveCapabilities(detected, schema.AutoLibrary, schema.AutoLibrary))
	assert.Equal(t,
		schema.Capabilities{Chart: false, WordCloud: true},
		ResolveCapabilities(detected, schema.NoLibrary, schema.YesLibrary),
	)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Addr: ":9000", CORSOrigins: []string{"a"}}
	clone := cfg.Clone()
	clone.CORSOrigins[0] = "b"
	clone.Addr = ":1"

	assert.Equal(t, "a", cfg.CORSOrigins[0])
	assert.Equal(t, ":9000", cfg.Addr)
}
