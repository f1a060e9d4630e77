package analysis

import "strings"

const (
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeLLMTransport   = "LLM_TRANSPORT_ERROR"
	ErrorCodeLLMTimeout     = "LLM_TIMEOUT"
	ErrorCodeSchemaMismatch = "LLM_SCHEMA_MISMATCH"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)

// ParseError reports that no recovery strategy could coerce the model
// reply into a JSON object. Raw carries the original reply for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "could not find valid JSON in model reply"
}

// MissingKeysError reports which required keys were absent from the
// parsed analysis object.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "analysis missing required fields: " + strings.Join(e.Keys, ", ")
}
