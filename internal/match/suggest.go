package match

import (
	"fmt"
	"strings"
)

// suggestion templates keyed by requirement category. Generation never
// errors: an unrecognizable gap degrades to the generic template, and an
// empty gap degrades to an empty suggestion.
var suggestionCategories = []struct {
	needles  []string
	template string
}{
	{
		needles:  []string{"aws", "gcp", "azure", "cloud", "kubernetes", "docker", "terraform"},
		template: "Add a bullet describing hands-on cloud or infrastructure work that touches %q, even from a side project.",
	},
	{
		needles:  []string{"sql", "postgres", "mysql", "database", "redis", "mongodb", "nosql"},
		template: "Surface any data-layer experience relevant to %q: schema design, query tuning, or migrations.",
	},
	{
		needles:  []string{"lead", "mentor", "leadership", "stakeholder", "cross-functional", "manage"},
		template: "Call out a concrete ownership or mentoring moment that speaks to %q.",
	},
	{
		needles:  []string{"test", "tdd", "ci", "cd", "pipeline", "automation"},
		template: "Mention testing or delivery-automation work that maps to %q.",
	},
}

const genericSuggestion = "Add a resume bullet with concrete, quantified evidence addressing %q."

func suggestionFor(gap string) string {
	g := strings.TrimSpace(gap)
	if g == "" {
		return ""
	}
	low := strings.ToLower(g)
	short := g
	if len([]rune(short)) > 80 {
		short = string([]rune(short)[:77]) + "..."
	}
	for _, cat := range suggestionCategories {
		for _, n := range cat.needles {
			if strings.Contains(low, n) {
				return fmt.Sprintf(cat.template, short)
			}
		}
	}
	return fmt.Sprintf(genericSuggestion, short)
}
