package domain

// JobPosting is one live posting retrieved from a company's career source.
// Requirements may be empty; the scorer then falls back to the description.
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements"`
}
