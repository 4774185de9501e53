package template

import (
	"regexp"
	"strings"
)

// BlockedPlaceholder replaces any blocked variable or dangerous value in
// rendered output.
const BlockedPlaceholder = "[BLOCKED]"

const truncationMarker = " [truncated]"

// blockedSubstrings are dangerous literal patterns checked against both
// path text and resolved values, case-insensitively.
var blockedSubstrings = []string{
	"<script",
	"javascript:",
	"eval(",
	"`",
	"${",
}

var (
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	tagRe          = regexp.MustCompile(`<[^>]*>`)
	allowedCharsRe = regexp.MustCompile(`[^a-zA-Z0-9 .,;:'"()\[\]/#&@$%+=!?*_\n\r\t-]`)
)

// blockedPattern returns the first dangerous pattern found in s, if any.
func blockedPattern(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, pat := range blockedSubstrings {
		if strings.Contains(lower, pat) {
			return pat, true
		}
	}
	if m := eventHandlerRe.FindString(s); m != "" {
		return m, true
	}
	return "", false
}

// sanitizeValue strips tags, restricts the character class, and truncates
// overlong values with a visible marker.
func sanitizeValue(s string, maxLen int) string {
	s = tagRe.ReplaceAllString(s, "")
	s = allowedCharsRe.ReplaceAllString(s, "")
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen] + truncationMarker
	}
	return s
}
