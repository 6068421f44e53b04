package claims

import "encoding/json"

// ProcessingResult is the single externally visible artifact of claim
// processing. It is built once per input document and not mutated after
// construction.
type ProcessingResult struct {
	ExtractedFields     *ExtractedFields `json:"extractedFields"`
	MissingFields       []FieldName      `json:"missingFields"`
	RecommendedRoute    Route            `json:"recommendedRoute"`
	Reasoning           string           `json:"reasoning"`
	ProcessingTimestamp string           `json:"processingTimestamp"`
	SourceFile          string           `json:"sourceFile"`
}

// JSON renders the result as indented JSON. Output is deterministic for
// identical inputs: map keys serialize in sorted order and the timestamp is
// the only clock-dependent value.
func (r *ProcessingResult) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Complete reports whether all mandatory fields were extracted
func (r *ProcessingResult) Complete() bool {
	return len(r.MissingFields) == 0
}
