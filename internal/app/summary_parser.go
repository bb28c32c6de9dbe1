package app

import "encoding/json"

// structuredSummaryFallback is returned whenever the model reply cannot be
// parsed as the expected JSON object, e.g. when the model wrapped the JSON in
// prose or markdown.
const structuredSummaryFallback = "AI could not structure the data properly."

type structuredSummary struct {
	Summary            string   `json:"summary"`
	AbnormalValues     []string `json:"abnormalValues"`
	Suggestions        []string `json:"suggestions"`
	QuestionsForDoctor []string `json:"questionsForDoctor"`
}

// parseStructuredSummary interprets the raw model reply as the fixed-shape
// analysis record. Parsing never fails past this boundary: any invalid input
// yields the fallback record with empty lists.
func parseStructuredSummary(raw string) structuredSummary {
	var summary structuredSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return structuredSummary{Summary: structuredSummaryFallback}
	}
	return summary
}
