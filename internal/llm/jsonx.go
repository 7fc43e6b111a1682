package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes markdown code-fence markup the model may wrap its
// JSON in (```json ... ```).
func StripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

// ExtractJSON locates the JSON payload inside free-form model output and
// returns it. The backend is not guaranteed to return bare JSON: the
// payload may be fenced or surrounded by prose. The payload runs from the
// first '{' or '[' to the last matching closer for that opener.
func ExtractJSON(text string) (string, error) {
	clean := StripFences(text)

	start := strings.IndexAny(clean, "{[")
	if start == -1 {
		return "", fmt.Errorf("no JSON object or array found in response")
	}

	closer := byte('}')
	if clean[start] == '[' {
		closer = ']'
	}

	end := strings.LastIndexByte(clean, closer)
	if end <= start {
		return "", fmt.Errorf("no closing %q found in response", string(closer))
	}

	return clean[start : end+1], nil
}

// ParseJSON extracts the JSON payload from text and unmarshals it into v.
// Callers supply their own fallback value when this fails.
func ParseJSON(text string, v interface{}) error {
	payload, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("unmarshal extracted JSON: %w", err)
	}
	return nil
}
