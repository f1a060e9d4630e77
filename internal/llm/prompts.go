package llm

import _ "embed"

//go:embed prompts/rfp_v1.txt
var promptRFPV1 string

// PromptTemplate returns the prompt text and whether the version was recognized.
// Unrecognized versions fall back to rfp_v1.
func PromptTemplate(version string) (string, bool) {
	switch version {
	case "rfp_v1":
		return promptRFPV1, true
	default:
		return promptRFPV1, false
	}
}
