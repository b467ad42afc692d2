package classify

import "regexp"

// Pre-compiled patterns for JSON extraction from provider responses.
var (
	// jsonBlockPattern matches JSON inside markdown code blocks: ```json { ... } ```
	jsonBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// jsonObjectPattern matches any JSON object (greedy fallback).
	jsonObjectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
)

// ExtractJSON extracts a JSON object embedded in provider prose. Models
// routinely wrap the payload in markdown fences or chatty framing text.
func ExtractJSON(content string) string {
	if matches := jsonBlockPattern.FindStringSubmatch(content); len(matches) > 1 {
		return matches[1]
	}
	if match := jsonObjectPattern.FindString(content); match != "" {
		return match
	}
	return ""
}
