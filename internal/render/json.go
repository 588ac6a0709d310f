// Package render formats command output: the run summary as styled text
// or as a versioned JSON envelope.
package render

import (
	"encoding/json"
	"io"
)

// SchemaVersion is the version of the JSON output contract.
const SchemaVersion = "1.0"

// SummaryJSONEnvelope is the stable JSON output format for new --json.
type SummaryJSONEnvelope struct {
	SchemaVersion string   `json:"schema_version"`
	Data          *Summary `json:"data"`
}

// WriteSummaryJSON writes s as JSON to w.
func WriteSummaryJSON(w io.Writer, s *Summary) error {
	if s != nil {
		s.normalize()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SummaryJSONEnvelope{SchemaVersion: SchemaVersion, Data: s})
}
