package analysis

import (
	"encoding/json"
	"strings"
)

// Section keys every analysis object must carry. Values are passed through
// to the renderers untyped; only key presence is checked.
const (
	KeyClientProblems     = "client_problems"
	KeyRequirements       = "requirements"
	KeyGotchas            = "gotchas"
	KeyTimeline           = "timeline"
	KeyNextSteps          = "next_steps"
	KeyAlignmentQuestions = "alignment_questions"
)

// RequiredKeys lists the six extraction categories in report order.
var RequiredKeys = []string{
	KeyClientProblems,
	KeyRequirements,
	KeyGotchas,
	KeyTimeline,
	KeyNextSteps,
	KeyAlignmentQuestions,
}

// Result is one recovered analysis. Raw holds the JSON object exactly as
// parsed from the model reply; fields is its decoded form.
type Result struct {
	Raw    json.RawMessage
	fields map[string]any
}

// TimelineEntry is one row of the timeline table.
type TimelineEntry struct {
	Event string
	Date  string
}

// Validate checks that all six required keys are present. It never
// inspects value types or item shapes; the renderers absorb those.
func (r Result) Validate() error {
	var missing []string
	for _, key := range RequiredKeys {
		if _, ok := r.fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// Items returns the section under key as trimmed strings, preserving
// order. Non-string items are re-encoded as compact JSON. A missing or
// non-array value yields an empty slice.
func (r Result) Items(key string) []string {
	arr, ok := r.fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, stringify(item))
	}
	return out
}

// Timeline returns the timeline section with per-entry fallbacks applied:
// entries missing an event render as "Unknown Event", missing a date as
// "TBD". An entry that is not an object at all becomes the event text.
func (r Result) Timeline() []TimelineEntry {
	arr, ok := r.fields[KeyTimeline].([]any)
	if !ok {
		return nil
	}
	out := make([]TimelineEntry, 0, len(arr))
	for _, item := range arr {
		entry := TimelineEntry{Event: "Unknown Event", Date: "TBD"}
		obj, ok := item.(map[string]any)
		if !ok {
			if s := stringify(item); s != "" {
				entry.Event = s
			}
			out = append(out, entry)
			continue
		}
		if event, ok := obj["event"].(string); ok && strings.TrimSpace(event) != "" {
			entry.Event = strings.TrimSpace(event)
		}
		if date, ok := obj["date"].(string); ok && strings.TrimSpace(date) != "" {
			entry.Date = strings.TrimSpace(date)
		}
		out = append(out, entry)
	}
	return out
}

// Count returns the number of items in the section under key.
func (r Result) Count(key string) int {
	arr, ok := r.fields[key].([]any)
	if !ok {
		return 0
	}
	return len(arr)
}

func stringify(item any) string {
	if s, ok := item.(string); ok {
		return strings.TrimSpace(s)
	}
	data, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
