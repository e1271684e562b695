package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Pre-compiled regex patterns for JSON extraction from model responses.
var (
	// thinkPattern matches reasoning markup some models emit before the answer.
	thinkPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	// jsonBlockPattern matches JSON inside a fenced markdown block tagged json.
	jsonBlockPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	// jsonObjectPattern greedily matches from the first { to the last }.
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	// trailingCommaPattern matches trailing commas before ] or }.
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractAnalysis locates and parses the JSON object embedded in raw model
// output. Models wrap their answer in reasoning markup, code fences or
// trailing prose; this is a best-effort carve, not a strict parser.
//
// Candidates are tried in order: a fenced ```json block first, then the
// greedy first-brace-to-last-brace span. The first candidate that parses
// wins. If nothing parses the result is an ExtractionError carrying the
// beginning of the original text.
func ExtractAnalysis(responseText string) (map[string]interface{}, error) {
	// Remove <think>...</think> sections so reasoning markup never reaches
	// the caller, even when it contains brace characters.
	withoutThinking := strings.TrimSpace(thinkPattern.ReplaceAllString(responseText, ""))

	// Extract JSON from a fenced code block
	if matches := jsonBlockPattern.FindStringSubmatch(withoutThinking); len(matches) > 1 {
		if result, ok := parseJSONObject(matches[1]); ok {
			return result, nil
		}
	}

	// Fallback: try to find any JSON-like object
	if candidate := jsonObjectPattern.FindString(withoutThinking); candidate != "" {
		if result, ok := parseJSONObject(candidate); ok {
			return result, nil
		}
	}

	return nil, NewExtractionError(responseText)
}

// parseJSONObject attempts to parse a candidate span as a JSON object.
// Trailing commas are stripped first since models commonly produce them.
func parseJSONObject(candidate string) (map[string]interface{}, bool) {
	cleaned := trailingCommaPattern.ReplaceAllString(strings.TrimSpace(candidate), "$1")

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, false
	}
	return result, true
}
