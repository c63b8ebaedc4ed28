package resume

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorscout-engine/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return NewStore(db)
}

func TestLoadBeforeSave(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadCurrentResume(context.Background())
	assert.ErrorIs(t, err, ErrNoResume)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := domain.Resume{
		Name:    "Dana",
		Summary: "Backend engineer.",
		Experience: []domain.ExperienceEntry{
			{Title: "Engineer", Employer: "Acme", Bullets: []string{"built things"}},
		},
		Skills: []string{"Go", "SQL"},
	}
	require.NoError(t, s.Save(ctx, r))

	got, err := s.LoadCurrentResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	// Saving again replaces, never appends.
	r.Summary = "Platform engineer."
	require.NoError(t, s.Save(ctx, r))
	got, err = s.LoadCurrentResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Platform engineer.", got.Summary)
}

func TestReindexReportsProgress(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, domain.Resume{
		Summary: "Backend engineer.",
		Skills:  []string{"Go", "SQL"},
		Projects: []domain.ProjectEntry{
			{Name: "loadgen", Technologies: []string{"Go"}},
		},
	}))

	var progress [][2]int
	blocks, err := s.Reindex(ctx, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	require.Len(t, progress, 3)
	for i, p := range progress {
		assert.Equal(t, i+1, p[0])
		assert.Equal(t, 3, p[1])
	}

	// Reindexing again replaces the projection in place.
	blocks, err = s.Reindex(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, blocks, 3)
}

func TestReindexWithoutResume(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Reindex(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoResume)
}
