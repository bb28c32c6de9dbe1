package app

import "testing"

func TestParseStructuredSummary(t *testing.T) {
	raw := `{"summary":"Cholesterol is high.","abnormalValues":["LDL 190"],"suggestions":["Reduce fried food"],"questionsForDoctor":["Should I start statins?"]}`
	got := parseStructuredSummary(raw)

	if got.Summary != "Cholesterol is high." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if len(got.AbnormalValues) != 1 || got.AbnormalValues[0] != "LDL 190" {
		t.Fatalf("unexpected abnormal values: %v", got.AbnormalValues)
	}
	if len(got.Suggestions) != 1 || len(got.QuestionsForDoctor) != 1 {
		t.Fatalf("lists not preserved: %v %v", got.Suggestions, got.QuestionsForDoctor)
	}
}

func TestParseStructuredSummaryProseFallsBack(t *testing.T) {
	// Models sometimes wrap the JSON in markdown or commentary; a bare parse
	// of that must yield the fallback record.
	got := parseStructuredSummary("Here is your JSON:\n```json\n{\"summary\":\"x\"}\n```")

	if got.Summary != structuredSummaryFallback {
		t.Fatalf("expected fallback sentinel, got %q", got.Summary)
	}
	if len(got.AbnormalValues) != 0 || len(got.Suggestions) != 0 || len(got.QuestionsForDoctor) != 0 {
		t.Fatalf("expected empty lists, got %v %v %v", got.AbnormalValues, got.Suggestions, got.QuestionsForDoctor)
	}
}

func TestParseStructuredSummaryEmptyInputFallsBack(t *testing.T) {
	got := parseStructuredSummary("")
	if got.Summary != structuredSummaryFallback {
		t.Fatalf("expected fallback sentinel for empty input, got %q", got.Summary)
	}
}
