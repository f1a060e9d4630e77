package analysis

import (
	"errors"
	"testing"
)

const sampleObject = `{
  "client_problems": ["Legacy system cannot scale"],
  "requirements": ["Must support 10k concurrent users"],
  "gotchas": ["Budget not disclosed"],
  "timeline": [{"event": "Proposal Due", "date": "2025-03-01"}],
  "next_steps": ["Schedule kickoff call"],
  "alignment_questions": ["What is our differentiator?"]
}`

func TestRecoverVariants(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"raw json", sampleObject},
		{"tagged fence", "Here is the analysis:\n```json\n" + sampleObject + "\n```\nLet me know if you need more."},
		{"untagged fence", "```\n" + sampleObject + "\n```"},
		{"embedded in prose", "Sure! The extracted analysis follows.\n" + sampleObject + "\nHope that helps."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Recover(tc.text)
			if err != nil {
				t.Fatalf("recover: %v", err)
			}
			if err := res.Validate(); err != nil {
				t.Fatalf("validate: %v", err)
			}
			got := res.Items(KeyGotchas)
			if len(got) != 1 || got[0] != "Budget not disclosed" {
				t.Fatalf("unexpected gotchas: %v", got)
			}
			timeline := res.Timeline()
			if len(timeline) != 1 || timeline[0].Event != "Proposal Due" || timeline[0].Date != "2025-03-01" {
				t.Fatalf("unexpected timeline: %v", timeline)
			}
		})
	}
}

func TestRecoverTaggedFenceBeatsBareFence(t *testing.T) {
	text := "```\nnot json at all\n```\nsome prose\n```json\n" + sampleObject + "\n```"
	res, err := Recover(text)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if err := res.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRecoverMissingClosingFence(t *testing.T) {
	res, err := Recover("```json\n" + sampleObject)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if res.Count(KeyRequirements) != 1 {
		t.Fatalf("unexpected requirement count: %d", res.Count(KeyRequirements))
	}
}

func TestRecoverNoJSONAnywhere(t *testing.T) {
	_, err := Recover("I could not analyze this document, sorry.")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw != "I could not analyze this document, sorry." {
		t.Fatalf("expected original reply preserved, got %q", parseErr.Raw)
	}
}

func TestRecoverBracesButInvalidJSON(t *testing.T) {
	_, err := Recover("something { not: valid json }")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
