package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// markupPattern matches inline client markup such as <<set:MS>> or <<set:S>>.
var markupPattern = regexp.MustCompile(`<<[^>]*>>`)

// StripMarkup removes inline <<...>> markup tokens. Every comparison between
// dump text and table text goes through this function.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<<") {
		return s
	}
	return markupPattern.ReplaceAllString(s, "")
}

// Normalize folds Windows line endings and composes the text to NFC so that
// clipboard text from any client compares equal to table text.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// Hash computes a SHA-256 hex hash of a string, used to identify dumps in logs.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
