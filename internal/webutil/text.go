package webutil

import "strings"

// CleanText collapses whitespace and non-breaking spaces from scraped text.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
