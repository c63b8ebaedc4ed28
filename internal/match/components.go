package match

import (
	"strings"

	"sponsorscout-engine/internal/domain"
)

// Components is the resume projected into independent text blocks: one per
// experience entry, one for the flat skill list, one per project, plus the
// summary when present. Block order carries no meaning for scoring.
type Components struct {
	Blocks []string
}

// ComponentsFromResume flattens the structured resume. Each experience
// entry becomes "title at employer" followed by its bullets; the skill
// list collapses into a single block; each project contributes its name,
// description and technologies.
func ComponentsFromResume(r domain.Resume) Components {
	var blocks []string

	if s := strings.TrimSpace(r.Summary); s != "" {
		blocks = append(blocks, s)
	}

	for _, e := range r.Experience {
		var b strings.Builder
		b.WriteString(strings.TrimSpace(e.Title))
		if e.Employer != "" {
			b.WriteString(" at ")
			b.WriteString(strings.TrimSpace(e.Employer))
		}
		for _, bullet := range e.Bullets {
			b.WriteString(". ")
			b.WriteString(strings.TrimSpace(bullet))
		}
		if s := strings.TrimSpace(b.String()); s != "" && s != "." {
			blocks = append(blocks, s)
		}
	}

	if len(r.Skills) > 0 {
		blocks = append(blocks, strings.Join(r.Skills, ", "))
	}

	for _, p := range r.Projects {
		parts := []string{strings.TrimSpace(p.Name)}
		if p.Description != "" {
			parts = append(parts, strings.TrimSpace(p.Description))
		}
		if len(p.Technologies) > 0 {
			parts = append(parts, strings.Join(p.Technologies, ", "))
		}
		if s := strings.TrimSpace(strings.Join(parts, ". ")); s != "" {
			blocks = append(blocks, s)
		}
	}

	return Components{Blocks: blocks}
}
