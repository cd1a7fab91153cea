package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHorizon is the fallback look-ahead used when none is provided.
const DefaultHorizon = "1w"

var (
	horizonPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-záí]+)`)
	horizonUnits   = map[string]int{
		"d":       1,
		"day":     1,
		"days":    1,
		"día":     1,
		"días":    1,
		"dia":     1,
		"dias":    1,
		"w":       7,
		"wk":      7,
		"week":    7,
		"weeks":   7,
		"sem":     7,
		"semana":  7,
		"semanas": 7,
	}
)

// ParseHorizon parses a day-granular look-ahead like "10d", "2w" or "1w3d"
// and returns the day count plus a canonical compact form. Everything the
// calendar holds is whole days, so sub-day units are rejected.
func ParseHorizon(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultHorizon
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := horizonPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid horizon segment %q", strings.TrimSpace(remaining))
		}

		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid horizon value %q: %w", matches[1], err)
		}
		days, ok := horizonUnits[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported horizon unit %q", matches[2])
		}
		total += value * days

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("horizon must be at least one day")
	}

	return total, FormatHorizon(total), nil
}

// FormatHorizon renders a day count using week/day tokens.
func FormatHorizon(days int) string {
	if days <= 0 {
		return "0d"
	}
	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
