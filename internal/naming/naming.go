// Package naming derives user-facing display names from internal
// identifiers like "golden_tiger" or "phoenix".
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayName converts an internal snake_case identifier into a
// title-cased display string ("golden_tiger" -> "Golden Tiger").
func DisplayName(id string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(id), "_", " ")
	if cleaned == "" {
		return ""
	}
	return titleCaser.String(cleaned)
}
