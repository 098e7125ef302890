package question

import "strings"

// NormalizeOption trims whitespace and lowercases an option for matching.
func NormalizeOption(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FindOption returns the option matching value after normalization.
func FindOption(options []string, value string) (string, bool) {
	want := NormalizeOption(value)
	if want == "" {
		return "", false
	}
	for _, option := range options {
		if NormalizeOption(option) == want {
			return option, true
		}
	}
	return "", false
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
