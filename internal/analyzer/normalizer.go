package analyzer

import (
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"strings"

	"site_clone_server/internal/spec"
)

// ErrNoJSON is reported when no extraction pattern yields a syntactically
// valid JSON object. The caller must then use the heuristic
// text-segmentation fallback, which always succeeds.
var ErrNoJSON = errors.New("no valid JSON object found in model response")

// Model output is inconsistent: sometimes pure JSON, sometimes prose-wrapped,
// sometimes truncated. The patterns are tried in fixed priority order and
// the first one whose match parses as a JSON object wins.
var jsonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\{.*\}`),
	regexp.MustCompile(`(?s)(\{.*?\})\s*$`),
	regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```"),
	regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```"),
}

// ExtractSpecification pulls a specification object out of arbitrary model
// output text. The returned specification is raw: fields the model omitted
// or mistyped are left at their zero value, and the caller is expected to
// run it through Complete before use.
func ExtractSpecification(rawText string) (spec.Specification, error) {
	cleaned := stripCodeFences(rawText)

	for i, pattern := range jsonPatterns {
		m := pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		span := m[0]
		if len(m) > 1 {
			span = m[1]
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(span), &obj); err != nil {
			log.Printf("JSON pattern %d matched but did not parse: %v", i, err)
			continue
		}
		log.Printf("Parsed model response using JSON pattern %d", i)
		return decodeSpecification(obj), nil
	}
	return spec.Specification{}, ErrNoJSON
}

// stripCodeFences removes surrounding markdown code-fence markers before
// pattern matching runs.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	}
	return strings.TrimSpace(cleaned)
}

// decodeSpecification decodes top-level fields independently so that one
// mistyped field does not discard the rest of an otherwise usable object.
// Fields that fail to decode stay at their zero value for the completer to
// backfill.
func decodeSpecification(obj map[string]json.RawMessage) spec.Specification {
	var s spec.Specification
	decodeField(obj, "framework", &s.Framework)
	decodeField(obj, "layout", &s.Layout)
	decodeField(obj, "colors", &s.Colors)
	decodeField(obj, "typography", &s.Typography)
	decodeField(obj, "components", &s.Components)
	decodeField(obj, "interactive_elements", &s.InteractiveElements)
	decodeField(obj, "content_structure", &s.ContentStructure)
	decodeField(obj, "cloning_requirements", &s.CloningRequirements)
	return s
}

func decodeField(obj map[string]json.RawMessage, key string, dst any) {
	raw, ok := obj[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("Ignoring mistyped specification field %q: %v", key, err)
	}
}
