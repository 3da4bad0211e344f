package util

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSONMarkdown extracts and decodes a JSON object from a string that may
// wrap it in a markdown code fence (``` or ```json). Raw JSON without a fence
// is accepted as well. Returns an error when no valid JSON object can be
// decoded.
func ParseJSONMarkdown(input string) (map[string]any, error) {
	candidate := strings.TrimSpace(input)

	if start := strings.Index(candidate, "```"); start != -1 {
		candidate = candidate[start+3:]
		// Optional language tag directly after the opening fence.
		if nl := strings.IndexByte(candidate, '\n'); nl != -1 {
			tag := strings.TrimSpace(candidate[:nl])
			if tag == "json" || tag == "" {
				candidate = candidate[nl+1:]
			}
		}
		if end := strings.LastIndex(candidate, "```"); end != -1 {
			candidate = candidate[:end]
		}
		candidate = strings.TrimSpace(candidate)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, fmt.Errorf("invalid json object: %w", err)
	}
	return fields, nil
}
