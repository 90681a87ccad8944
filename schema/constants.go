package schema

// Custom string types for type safety.
type (
	// ActionKind represents what a render action does to its host element.
	ActionKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// LibraryMode represents how the presence of a rendering library is decided.
	LibraryMode string

	// Reason explains why an action was chosen.
	Reason string
)

// All action kinds supported.
const (
	MountChartAction     ActionKind = "mount_chart"
	MountWordCloudAction ActionKind = "mount_wordcloud"
	ShowTextAction       ActionKind = "show_text"
	NoopAction           ActionKind = "noop"
)

// All action reasons.
const (
	ReasonHostAbsent           Reason = "host_absent"
	ReasonChartUnavailable     Reason = "chart_unavailable"
	ReasonWordCloudUnavailable Reason = "wordcloud_unavailable"
	ReasonInvalidScores        Reason = "invalid_scores"
	ReasonNoScores             Reason = "no_scores"
	ReasonNoKeywords           Reason = "no_keywords"
	ReasonRendered             Reason = "rendered"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All library modes supported.
const (
	AutoLibrary LibraryMode = "auto" // default, detect from <script src>
	YesLibrary  LibraryMode = "yes"
	NoLibrary   LibraryMode = "no"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// Page contract: host elements and the attributes that carry their data.
const (
	RadarElementID     = "radarChart"
	WordCloudElementID = "wordcloud"

	RoleScoresAttr = "data-role-scores"
	KeywordsAttr   = "data-keywords"

	DefaultRoleScoresJSON = "{}"
	DefaultKeywordsJSON   = "[]"
)

// Radar chart constants.
const (
	RadarChartType  = "radar"
	RoleSeparator   = "_"
	RadarFillColor  = "rgba(37, 99, 235, 0.20)"
	RadarLineColor  = "rgba(37, 99, 235, 1)"
	RadarPointWhite = "#fff"
	RadarScaleMin   = 0
	RadarScaleMax   = 100
	RadarTickStep   = 20
)

// Word cloud constants.
const (
	KeywordWeightOffset    = 10
	WordCloudGridSize      = 10
	WordCloudWeightFactor  = 2
	WordCloudTransparentBg = "rgba(0,0,0,0)"
)

// WordCloudPalette is the fixed set of colours a word is drawn in.
var WordCloudPalette = []string{
	"#1d4ed8", "#2563eb", "#0f766e",
	"#9333ea", "#b45309", "#be123c",
}

// PaletteCopy returns a fresh copy of WordCloudPalette.
func PaletteCopy() []string {
	out := make([]string, len(WordCloudPalette))
	copy(out, WordCloudPalette)
	return out
}
