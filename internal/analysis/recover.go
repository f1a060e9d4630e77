package analysis

import (
	"encoding/json"
	"strings"
)

// Model replies are not guaranteed to be clean JSON: they may wrap the
// object in a fenced code block or surround it with prose. Recovery is an
// ordered list of pure extraction strategies; the first one whose
// candidate parses as a JSON object wins.
var strategies = []func(string) (string, bool){
	wholeReply,
	taggedFence,
	anyFence,
	braceSpan,
}

// Recover coerces a model reply into a Result. It returns a *ParseError
// carrying the original reply when every strategy fails.
func Recover(text string) (Result, error) {
	for _, strategy := range strategies {
		candidate, ok := strategy(text)
		if !ok {
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
			continue
		}
		return Result{Raw: json.RawMessage(candidate), fields: fields}, nil
	}
	return Result{}, &ParseError{Raw: text}
}

func wholeReply(text string) (string, bool) {
	return strings.TrimSpace(text), true
}

func taggedFence(text string) (string, bool) {
	return fencedBlock(text, "```json")
}

func anyFence(text string) (string, bool) {
	return fencedBlock(text, "```")
}

func fencedBlock(text, opening string) (string, bool) {
	start := strings.Index(text, opening)
	if start == -1 {
		return "", false
	}
	start += len(opening)
	rest := text[start:]
	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
