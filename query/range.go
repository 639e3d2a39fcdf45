package query

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/poiesic/jobagent/core"
)

// ParseExperience normalizes a free-form experience expression into a
// canonical constraint. It accepts numbers, strings such as "3-5" or
// "3 to 5", and values already shaped as a range.
//
// A nil result means the expression was absent or unparseable and callers
// treat it as "no range constraint". A constraint is never fabricated from
// malformed input, and parsing never panics.
func ParseExperience(value any) *core.Experience {
	switch v := value.(type) {
	case nil:
		return nil
	case *core.Experience:
		return validRange(v)
	case core.Experience:
		return validRange(&v)
	case int:
		return exactYears(v)
	case int64:
		return exactYears(int(v))
	case float64:
		// JSON numbers decode as float64; only whole values are years.
		if v != float64(int(v)) {
			return nil
		}
		return exactYears(int(v))
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		return exactYears(int(n))
	case string:
		return parseExperienceString(v)
	case map[string]any:
		return parseExperienceMap(v)
	default:
		return nil
	}
}

// parseExperienceString handles textual expressions: a bare integer, or two
// integers joined by "-" or the word "to" (case-insensitive).
func parseExperienceString(s string) *core.Experience {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Bare integer
	if n, err := strconv.Atoi(s); err == nil {
		return exactYears(n)
	}

	var parts []string
	lower := strings.ToLower(s)
	if idx := strings.Index(lower, "to"); idx >= 0 {
		parts = []string{s[:idx], s[idx+2:]}
	} else if strings.Contains(s, "-") {
		parts = strings.Split(s, "-")
	} else {
		return nil
	}

	// The split must yield exactly two numeric parts.
	if len(parts) != 2 {
		return nil
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}

	return validRange(&core.Experience{Min: min, Max: max})
}

// parseExperienceMap handles values already shaped as a range object,
// e.g. {"min": 3, "max": 5} from an external rewriter.
func parseExperienceMap(m map[string]any) *core.Experience {
	min, okMin := intField(m, "min")
	max, okMax := intField(m, "max")
	if !okMin || !okMax {
		return nil
	}
	return validRange(&core.Experience{Min: min, Max: max})
}

func intField(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	exp := ParseExperience(v)
	if exp == nil || !exp.Exact {
		return 0, false
	}
	return exp.Min, true
}

func exactYears(n int) *core.Experience {
	if n < 0 {
		return nil
	}
	return &core.Experience{Min: n, Max: n, Exact: true}
}

func validRange(exp *core.Experience) *core.Experience {
	if exp == nil || core.ValidateExperience(exp) != nil {
		return nil
	}
	return exp
}
