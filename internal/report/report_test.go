package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"rfp-backend/internal/analysis"
	"rfp-backend/internal/extract"
)

func mustResult(t *testing.T, text string) analysis.Result {
	t.Helper()
	res, err := analysis.Recover(text)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	return res
}

func renderText(t *testing.T, res analysis.Result, now time.Time) string {
	t.Helper()
	buf, err := Generate(res, "client-rfp.pdf", now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	text, err := extract.Text(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("extract rendered pdf: %v", err)
	}
	return text
}

func TestGenerateFullReport(t *testing.T) {
	res := mustResult(t, `{
		"client_problems": ["Legacy system cannot scale"],
		"requirements": ["Must support 10k concurrent users"],
		"gotchas": ["Budget not disclosed"],
		"timeline": [{"event":"Proposal Due","date":"2025-03-01"}],
		"next_steps": ["Schedule kickoff call"],
		"alignment_questions": ["What is our differentiator?"]
	}`)

	now := time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC)
	text := renderText(t, res, now)

	for _, want := range []string{
		"RFP Analysis Report",
		"Source: client-rfp.pdf",
		"Client Problems & Challenges",
		"Legacy system cannot scale",
		"Specific Requirements",
		"Must support 10k concurrent users",
		"Gotchas & Ambiguities",
		"Budget not disclosed",
		"Timeline & Key Dates",
		"Proposal Due",
		"2025-03-01",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestGenerateEmptySections(t *testing.T) {
	res := mustResult(t, `{"client_problems":[],"requirements":[],"gotchas":[],"timeline":[],"next_steps":[],"alignment_questions":[]}`)

	text := renderText(t, res, time.Now())
	if got := strings.Count(text, "No items identified."); got != 3 {
		t.Fatalf("expected 3 empty-section lines, got %d", got)
	}
	if !strings.Contains(text, "No timeline information available.") {
		t.Fatal("expected empty-timeline line")
	}
}

func TestGenerateTimelineFallbacks(t *testing.T) {
	res := mustResult(t, `{
		"client_problems":[],"requirements":[],"gotchas":[],
		"timeline":[{"event":"Kickoff"},{"date":"2025-06-01"}],
		"next_steps":[],"alignment_questions":[]
	}`)

	text := renderText(t, res, time.Now())
	if !strings.Contains(text, "Kickoff") || !strings.Contains(text, "TBD") {
		t.Fatal("expected missing date to render as TBD")
	}
	if !strings.Contains(text, "Unknown Event") || !strings.Contains(text, "2025-06-01") {
		t.Fatal("expected missing event to render as Unknown Event")
	}
}

func TestGenerateIsContentStable(t *testing.T) {
	res := mustResult(t, `{
		"client_problems":["p1","p2"],"requirements":["r1"],"gotchas":["g1"],
		"timeline":[{"event":"e1","date":"2025-01-01"}],
		"next_steps":[],"alignment_questions":[]
	}`)

	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	first := renderText(t, res, now)
	second := renderText(t, res, now)
	if first != second {
		t.Fatal("expected identical text content across renders")
	}
}
