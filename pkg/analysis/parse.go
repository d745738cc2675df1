package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the structured outcome of one analysis call. Raw always holds
// the unmodified model reply for audit, even when parsing succeeded.
type Result struct {
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
	Raw     string   `json:"-"`
}

// ParseResult decodes the model reply. Models sometimes wrap the JSON in
// Markdown code fences; those are stripped first. Field matching is
// case-insensitive (encoding/json default). A malformed reply never fails:
// it becomes a degraded Result carrying the raw text with empty skills.
func ParseResult(raw string) Result {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return degraded(fmt.Sprintf("Failed to parse model response: %v. Raw: %s", err, raw), raw)
	}

	if result.Summary == "" && result.Skills == nil {
		// Valid JSON but not the expected shape (e.g. "null" or "{}")
		return degraded("Failed to parse model response: expected summary and skills. Raw: "+raw, raw)
	}

	if result.Skills == nil {
		result.Skills = []string{}
	}
	result.Raw = raw
	return result
}

func degraded(summary, raw string) Result {
	return Result{
		Summary: summary,
		Skills:  []string{},
		Raw:     raw,
	}
}
