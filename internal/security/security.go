// Package security provides security-related utilities.
package security

import (
	"errors"
	"regexp"
	"strings"
)

var destructivePatterns = []*regexp.Regexp{
	// schema or database removal
	regexp.MustCompile(`(?is)^\s*drop\s+(table|database|schema|index|view)\b`),
	regexp.MustCompile(`(?is)^\s*truncate\b`),
	// mass modification with no row predicate
	regexp.MustCompile(`(?is)^\s*delete\s+from\s+\S+\s*;?\s*$`),
	regexp.MustCompile(`(?is)^\s*update\s+\S+\s+set\s+[^;]*$`),
	// permission changes
	regexp.MustCompile(`(?is)^\s*(grant|revoke)\b`),
	regexp.MustCompile(`(?is)^\s*alter\s+(role|user)\b`),
}

// CheckQuery returns nil if the statement is safe to run from the
// browser, or an error describing why it's blocked. tabr is a viewer,
// so statements that drop objects or modify rows without a predicate
// are refused. Checking is conservative and not exhaustive.
func CheckQuery(query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		return errors.New("empty query")
	}
	for _, re := range destructivePatterns {
		if re.MatchString(q) {
			if containsWhere(q) {
				continue
			}
			return errors.New("statement looks destructive; run it from a database client instead")
		}
	}
	return nil
}

func containsWhere(q string) bool {
	lower := strings.ToLower(q)
	// DROP/TRUNCATE/GRANT are blocked regardless of a predicate.
	if !strings.HasPrefix(strings.TrimSpace(lower), "update") &&
		!strings.HasPrefix(strings.TrimSpace(lower), "delete") {
		return false
	}
	return strings.Contains(lower, " where ")
}
