package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseAssignees converts a raw Assign cell into a flat list of non-empty,
// trimmed agent identifiers. Accepted shapes: a real list, a pseudo-JSON
// array string ("['a', 'b']"), a comma-separated string, or a single value.
// When nothing usable remains and an owner exists, the owner is the assignee.
func ParseAssignees(v any, owner string) []string {
	var elements []any

	switch val := v.(type) {
	case nil:
	case []string:
		for _, s := range val {
			elements = append(elements, s)
		}
	case []any:
		elements = val
	case string:
		elements = splitAssignees(val)
	default:
		elements = []any{fmt.Sprint(val)}
	}

	out := make([]string, 0, len(elements))
	for _, el := range elements {
		// Flatten one nesting level; pseudo-JSON parses can yield inner arrays.
		if inner, ok := el.([]any); ok {
			for _, sub := range inner {
				out = appendAssignee(out, sub)
			}
			continue
		}
		out = appendAssignee(out, el)
	}

	if len(out) == 0 {
		if owner = strings.TrimSpace(owner); owner != "" {
			return []string{owner}
		}
	}
	return out
}

func appendAssignee(list []string, el any) []string {
	if el == nil {
		return list
	}
	s := strings.TrimSpace(fmt.Sprint(el))
	if s == "" {
		return list
	}
	return append(list, s)
}

// splitAssignees interprets a string cell. Bracketed values are treated as
// pseudo-JSON (single quotes replaced by double quotes); if that fails the
// whole string counts as one assignee rather than surfacing an error.
func splitAssignees(s string) []any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var arr []any
		quoted := strings.ReplaceAll(trimmed, "'", `"`)
		if err := json.Unmarshal([]byte(quoted), &arr); err == nil {
			return arr
		}
		return []any{trimmed}
	}

	if strings.Contains(trimmed, ",") {
		fields := strings.Split(trimmed, ",")
		out := make([]any, 0, len(fields))
		for _, f := range fields {
			out = append(out, f)
		}
		return out
	}

	return []any{trimmed}
}
