package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorscout-engine/internal/domain"
)

func sampleResume() domain.Resume {
	return domain.Resume{
		Summary: "Backend engineer focused on Go services and PostgreSQL.",
		Experience: []domain.ExperienceEntry{
			{
				Title:    "Software Engineer",
				Employer: "Acme",
				Bullets: []string{
					"Built Go microservices deployed on Kubernetes",
					"Designed PostgreSQL schemas and tuned slow queries",
				},
			},
		},
		Skills: []string{"Go", "PostgreSQL", "Docker", "gRPC"},
		Projects: []domain.ProjectEntry{
			{Name: "loadgen", Description: "distributed load generator", Technologies: []string{"Go", "Redis"}},
		},
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	comps := ComponentsFromResume(sampleResume())
	posting := domain.JobPosting{
		ID:    "j1",
		Title: "Backend Engineer",
		Requirements: []string{
			"5+ years of Go development",
			"Experience with PostgreSQL and Redis",
			"Familiarity with Haskell",
		},
	}

	first := s.Score(posting, comps)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(posting, comps))
	}
}

func TestScoreBlockOrderIndependent(t *testing.T) {
	s := NewScorer()
	posting := domain.JobPosting{
		ID:           "j1",
		Title:        "Backend Engineer",
		Requirements: []string{"Go and PostgreSQL", "Kubernetes deployments"},
	}

	comps := ComponentsFromResume(sampleResume())
	reversed := Components{Blocks: make([]string, len(comps.Blocks))}
	for i, b := range comps.Blocks {
		reversed.Blocks[len(comps.Blocks)-1-i] = b
	}

	assert.Equal(t, s.Score(posting, comps).OverallScore, s.Score(posting, reversed).OverallScore)
}

func TestScoreOneMatchPerRequirement(t *testing.T) {
	s := NewScorer()
	comps := ComponentsFromResume(sampleResume())
	posting := domain.JobPosting{
		ID:           "j1",
		Requirements: []string{"Go", "PostgreSQL", "COBOL mainframe programming"},
	}

	res := s.Score(posting, comps)
	require.Len(t, res.RequirementMatches, 3)
	for i, req := range posting.Requirements {
		assert.Equal(t, req, res.RequirementMatches[i].Requirement)
		assert.GreaterOrEqual(t, res.RequirementMatches[i].Score, 0.0)
		assert.LessOrEqual(t, res.RequirementMatches[i].Score, 1.0)
	}
	assert.GreaterOrEqual(t, res.OverallScore, 0)
	assert.LessOrEqual(t, res.OverallScore, 100)
}

func TestScoreEmptyRequirementsUsesDescription(t *testing.T) {
	s := NewScorer()
	comps := ComponentsFromResume(sampleResume())

	posting := domain.JobPosting{
		ID:          "j1",
		Title:       "Platform Engineer",
		Description: "Build Go services on Kubernetes with PostgreSQL storage.",
	}
	res := s.Score(posting, comps)
	require.Len(t, res.RequirementMatches, 1)
	assert.Equal(t, posting.Description, res.RequirementMatches[0].Requirement)
	assert.Greater(t, res.RequirementMatches[0].Score, 0.0)

	// No description either: the title stands in.
	bare := domain.JobPosting{ID: "j2", Title: "Go Engineer"}
	res = s.Score(bare, comps)
	require.Len(t, res.RequirementMatches, 1)
	assert.Equal(t, "Go Engineer", res.RequirementMatches[0].Requirement)
}

func TestScoreGapsAndStrengths(t *testing.T) {
	s := NewScorer()
	comps := Components{Blocks: []string{"golang postgresql kubernetes docker"}}

	posting := domain.JobPosting{
		ID: "j1",
		Requirements: []string{
			"golang postgresql kubernetes", // full coverage: strength
			"haskell erlang prolog",        // zero coverage: gap
		},
	}

	res := s.Score(posting, comps)
	assert.Equal(t, []string{"haskell erlang prolog"}, res.Gaps)
	assert.Equal(t, []string{"golang postgresql kubernetes"}, res.Strengths)
	require.Len(t, res.Suggestions, 1)
	assert.NotEmpty(t, res.Suggestions[0])
}

func TestScoreOverallIsRoundedMean(t *testing.T) {
	s := NewScorer()
	comps := Components{Blocks: []string{"golang postgresql"}}

	posting := domain.JobPosting{
		ID: "j1",
		Requirements: []string{
			"golang postgresql", // 1.0
			"haskell",           // 0.0
		},
	}

	res := s.Score(posting, comps)
	assert.Equal(t, 50, res.OverallScore)
}

func TestTokenizeKeepsTechTokens(t *testing.T) {
	kw := tokenize("C++, C#, Node.js and strong SQL experience (5 years)")
	assert.True(t, kw["c++"])
	assert.True(t, kw["c#"])
	assert.True(t, kw["node.js"])
	assert.True(t, kw["sql"])
	// Stop words and short tokens are dropped.
	assert.False(t, kw["and"])
	assert.False(t, kw["experience"])
	assert.False(t, kw["strong"])
}

func TestSuggestionForDegradesGracefully(t *testing.T) {
	assert.Empty(t, suggestionFor("   "))
	assert.Contains(t, suggestionFor("deep knowledge of quantum annealing"), "quantum annealing")
	assert.Contains(t, suggestionFor("AWS and Terraform"), "AWS and Terraform")
}
