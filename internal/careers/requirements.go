package careers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sponsorscout-engine/internal/webutil"
)

const maxExtractedRequirements = 25

// ExtractRequirements pulls requirement strings out of a description's
// HTML list items. Plain-text descriptions fall back to dash-prefixed
// lines. Returns nil when nothing list-like is found; the scorer then
// treats the description itself as a single synthetic requirement.
func ExtractRequirements(descHTML string) []string {
	desc := strings.TrimSpace(descHTML)
	if desc == "" {
		return nil
	}

	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		s = webutil.CleanText(s)
		if s == "" || len(out) >= maxExtractedRequirements {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	if strings.Contains(desc, "<") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
		if err == nil {
			doc.Find("li").Each(func(_ int, li *goquery.Selection) {
				add(li.Text())
			})
		}
	}

	if len(out) == 0 {
		for _, line := range strings.Split(desc, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
				add(line[2:])
			}
		}
	}

	return out
}
