package operations

// Pipeline stage identifiers. Span names and the "stage" metric attribute
// use these values.
const (
	StageIDValidate = "validate"
	StageIDVolcano  = "volcano"
	StageIDSpotify  = "spotify"
	StageIDMerge    = "merge"
	StageIDSummary  = "summary"
	StageIDExport   = "export"
)

// Pipeline stage names
const (
	StageNameValidate = "Source Validation"
	StageNameVolcano  = "Volcano Aggregation"
	StageNameSpotify  = "Spotify Aggregation"
	StageNameMerge    = "Weekly Merge"
	StageNameSummary  = "Summary Statistics"
	StageNameExport   = "Output Export"
)

// TracerName is the instrumentation scope of pipeline spans.
const TracerName = "vsdash.pipeline"
