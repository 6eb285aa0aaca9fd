package detector

import "encoding/json"

// Undetermined is the fallback language code emitted when no candidate
// qualifies.
const Undetermined = "und"

// Result pairs a language code with a confidence score in (0, 1]. A Result
// slice is always ordered by descending confidence.
type Result struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Fallback returns the single-element undetermined result list.
func Fallback() []Result {
	return []Result{{Language: Undetermined, Confidence: 1.0}}
}

// ResultsToJSON serializes results with stable field order and indentation.
func ResultsToJSON(results []Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
