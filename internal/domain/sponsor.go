package domain

// SponsorRole is one sponsored position reported by the visa-sponsor registry.
type SponsorRole struct {
	Title string  `json:"title"`
	Wage  float64 `json:"wage"`
}

// SponsorCandidate is an employer known to sponsor skilled-worker visas,
// with aggregate position/wage statistics. Read-only to downstream stages.
type SponsorCandidate struct {
	CompanyName    string        `json:"companyName"`
	TotalPositions int           `json:"totalPositions"`
	AvgWage        float64       `json:"avgWage"`
	Roles          []SponsorRole `json:"roles,omitempty"`
}
