package utils

import (
	"strings"
)

// ContainsAny reports whether the lowercased message contains any of the
// given keywords as a substring.
func ContainsAny(message string, keywords []string) bool {
	message = strings.ToLower(message)
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

// MatchAll returns the keywords present in the lowercased message, in the
// order the keyword list is scanned.
func MatchAll(message string, keywords []string) []string {
	message = strings.ToLower(message)
	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

// CountMatches returns how many of the keywords appear in the lowercased
// message. Each keyword counts at most once.
func CountMatches(message string, keywords []string) int {
	return len(MatchAll(message, keywords))
}
