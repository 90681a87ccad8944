package contract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// DefaultChartScriptPattern matches Chart.js bundles such as chart.umd.min.js or npm/chart.js.
	DefaultChartScriptPattern = `(?i)(^|/)chart(\.umd)?(\.min)?\.js($|\?)`

	// DefaultWordCloudScriptPattern matches wordcloud2.js bundles.
	DefaultWordCloudScriptPattern = `(?i)(^|/)wordcloud2(\.min)?\.js($|\?)`
)

// LibraryPatterns decide whether a rendering library is loaded on a page.
type LibraryPatterns struct {
	Chart     *regexp.Regexp
	WordCloud *regexp.Regexp
}

// DefaultLibraryPatterns returns the compiled default patterns.
func DefaultLibraryPatterns() LibraryPatterns {
	return LibraryPatterns{
		Chart:     regexp.MustCompile(DefaultChartScriptPattern),
		WordCloud: regexp.MustCompile(DefaultWordCloudScriptPattern),
	}
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile  string
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ChartLib     schema.LibraryMode
	WordCloudLib schema.LibraryMode
	Patterns     LibraryPatterns

	// Inline page data used when no input file is given.
	Scores   string
	Keywords string

	Addr        string
	CORSOrigins []string

	LogLevel  logrus.Level
	LogFormat string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFile string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	LogLevel         string `mapstructure:"log-level"`
	LogFormat        string `mapstructure:"log-format"`
	ChartLib         string `mapstructure:"chart-lib"`
	WordCloudLib     string `mapstructure:"wordcloud-lib"`
	ChartPattern     string `mapstructure:"chart-script-pattern"`
	WordCloudPattern string `mapstructure:"wordcloud-script-pattern"`

	// --- Fields from planCmd.Flags() ---
	Scores   string `mapstructure:"scores"`
	Keywords string `mapstructure:"keywords"`

	// --- Fields from serveCmd.Flags() ---
	Addr        string `mapstructure:"addr"`
	CORSOrigins string `mapstructure:"cors-origins"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CORSOrigins != nil {
		clone.CORSOrigins = make([]string, len(c.CORSOrigins))
		copy(clone.CORSOrigins, c.CORSOrigins)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processLibraries(cfg, input); err != nil {
		return err
	}
	if err := processLogging(cfg, input); err != nil {
		return err
	}
	processServer(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFile
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Scores = input.Scores
	cfg.Keywords = input.Keywords

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// processLibraries resolves the library modes and compiles detection patterns.
func processLibraries(cfg *Config, input *ConfigRawInput) error {
	var err error
	if cfg.ChartLib, err = ParseLibraryMode(input.ChartLib); err != nil {
		return fmt.Errorf("invalid --chart-lib value: %w", err)
	}
	if cfg.WordCloudLib, err = ParseLibraryMode(input.WordCloudLib); err != nil {
		return fmt.Errorf("invalid --wordcloud-lib value: %w", err)
	}

	cfg.Patterns = DefaultLibraryPatterns()
	if input.ChartPattern != "" {
		if cfg.Patterns.Chart, err = regexp.Compile(input.ChartPattern); err != nil {
			return fmt.Errorf("invalid --chart-script-pattern: %w", err)
		}
	}
	if input.WordCloudPattern != "" {
		if cfg.Patterns.WordCloud, err = regexp.Compile(input.WordCloudPattern); err != nil {
			return fmt.Errorf("invalid --wordcloud-script-pattern: %w", err)
		}
	}
	return nil
}

// processLogging validates the log level and format.
func processLogging(cfg *Config, input *ConfigRawInput) error {
	levelStr := input.LogLevel
	if levelStr == "" {
		levelStr = DefaultLogLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	cfg.LogLevel = level

	switch format := strings.ToLower(input.LogFormat); format {
	case "", DefaultLogFormat:
		cfg.LogFormat = DefaultLogFormat
	case "json":
		cfg.LogFormat = format
	default:
		return fmt.Errorf("invalid --log-format '%s'. must be text or json", input.LogFormat)
	}
	return nil
}

// processServer fills the HTTP server fields.
func processServer(cfg *Config, input *ConfigRawInput) {
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.CORSOrigins = nil
	for p := range strings.SplitSeq(input.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}
}

// ParseLibraryMode parses auto/yes/no, also accepting the boolean spellings of ParseBoolString.
func ParseLibraryMode(s string) (schema.LibraryMode, error) {
	if s == "" || strings.EqualFold(s, string(schema.AutoLibrary)) {
		return schema.AutoLibrary, nil
	}
	b, err := ParseBoolString(s)
	if err != nil {
		return "", fmt.Errorf("invalid library mode: %s (expected auto/yes/no)", s)
	}
	if b {
		return schema.YesLibrary, nil
	}
	return schema.NoLibrary, nil
}

// ResolveCapabilities applies the library modes on top of detected capabilities.
func ResolveCapabilities(detected schema.Capabilities, chart, wordcloud schema.LibraryMode) schema.Capabilities {
	return schema.Capabilities{
		Chart:     resolveLibrary(detected.Chart, chart),
		WordCloud: resolveLibrary(detected.WordCloud, wordcloud),
	}
}

func resolveLibrary(detected bool, mode schema.LibraryMode) bool {
	switch mode {
	case schema.YesLibrary:
		return true
	case schema.NoLibrary:
		return false
	default:
		return detected
	}
}
