// Package binding substitutes ${name} placeholders in marketing copy.
// The compositor exposes a closed set of variables (brand, title, date), so
// resolution is a flat map lookup; unresolved placeholders are kept verbatim
// rather than erased.
package binding

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${name} in text with vars[name]. Names are
// trimmed of surrounding whitespace; unknown names leave the placeholder
// untouched.
func Interpolate(text string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		name := strings.TrimSpace(groups[1])
		if val, ok := vars[name]; ok {
			return val
		}
		return match
	})
}
