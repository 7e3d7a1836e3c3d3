// Package nameutil cleans names that come from outside the program:
// table names shown as tab titles and export filenames typed or pasted
// by the user.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// zero-width characters commonly introduced by copy/paste
var zeroWidth = map[rune]bool{
	'\u200b': true,
	'\u200c': true,
	'\u200d': true,
	'\ufeff': true,
}

// Sanitize removes control and zero-width characters and trims
// surrounding whitespace. Returns the cleaned string and whether any
// change was made.
func Sanitize(name string) (string, bool) {
	runes := []rune(name)
	out := make([]rune, 0, len(runes))
	changed := false
	for _, r := range runes {
		if unicode.IsControl(r) || zeroWidth[r] {
			changed = true
			continue
		}
		out = append(out, r)
	}
	cleaned := strings.TrimSpace(string(out))
	if cleaned != name {
		changed = true
	}
	return cleaned, changed
}

// ValidateFilename checks a user-supplied export filename: non-empty,
// valid UTF-8, and free of control characters and path separators that
// would escape the target directory through a typo.
func ValidateFilename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid filename: empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid filename: bad encoding")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid filename: contains control character U+%04X", r)
		}
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("invalid filename: contains '..'")
	}
	return nil
}
