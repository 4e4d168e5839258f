package exporter

import (
	"encoding/json"
	"io"

	"vsdash/pkg/contracts/domain"
)

// SummaryDocument is the JSON document served to the dashboard.
type SummaryDocument struct {
	StartYear int            `json:"start_year"`
	EndYear   int            `json:"end_year"`
	Summary   domain.Summary `json:"summary"`
}

// WriteSummaryJSON writes the summary document as indented JSON to path.
func WriteSummaryJSON(path string, doc SummaryDocument) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
}
