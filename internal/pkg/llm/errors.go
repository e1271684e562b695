package llm

import (
	"errors"
	"unicode/utf8"
)

// snippetLength bounds the amount of raw model output kept for diagnostics
const snippetLength = 500

// ExtractionError indicates that model output contained no parseable JSON
// object. It carries the beginning of the raw response for diagnostics.
type ExtractionError struct {
	Snippet string
}

func (e *ExtractionError) Error() string {
	return "no JSON object found in model response"
}

// NewExtractionError creates an ExtractionError keeping the first part of the
// raw model output. Truncation backs up to a rune boundary so the snippet
// stays valid UTF-8.
func NewExtractionError(raw string) error {
	if len(raw) > snippetLength {
		cut := snippetLength
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}
	return &ExtractionError{Snippet: raw}
}

// IsExtractionError returns true if the error is an extraction failure
func IsExtractionError(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}
