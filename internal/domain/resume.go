package domain

// ExperienceEntry is one job on the resume.
type ExperienceEntry struct {
	Title    string   `json:"title"`
	Employer string   `json:"employer"`
	Bullets  []string `json:"bullets,omitempty"`
}

// ProjectEntry is one project on the resume.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Resume is the structured resume loaded once per run before scoring.
type Resume struct {
	Name       string            `json:"name,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
}

// IsEmpty reports whether the resume has no scoreable content.
func (r Resume) IsEmpty() bool {
	return len(r.Experience) == 0 && len(r.Skills) == 0 && len(r.Projects) == 0 && r.Summary == ""
}
