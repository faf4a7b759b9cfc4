package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitCoach_AIProject/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSummaryEmpty(t *testing.T) {
	s := openTestStore(t)

	summaries, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}

func TestRecordAndSummarize(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []models.GenerationEvent{
		{RequestID: "r1", Kind: models.KindPlan, Status: 200, DurationMS: 3000},
		{RequestID: "r2", Kind: models.KindPlan, Status: 500, ErrorKind: "parse", DurationMS: 1000},
		{RequestID: "r3", Kind: models.KindImage, Status: 200, DurationMS: 8000},
		{RequestID: "r4", Kind: models.KindSpeech, Status: 400, ErrorKind: "validation", DurationMS: 0},
	}
	for _, ev := range events {
		require.NoError(t, s.RecordGeneration(ctx, ev))
	}

	summaries, err := s.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	byKind := map[string]models.UsageSummary{}
	for _, u := range summaries {
		byKind[u.Kind] = u
	}
	plan := byKind[models.KindPlan]
	assert.EqualValues(t, 2, plan.Total)
	assert.EqualValues(t, 1, plan.Succeeded)
	assert.EqualValues(t, 1, plan.Failed)
	assert.InDelta(t, 2000, plan.AvgDurationMS, 0.01)

	assert.EqualValues(t, 1, byKind[models.KindImage].Succeeded)
	assert.EqualValues(t, 1, byKind[models.KindSpeech].Failed)
}

func TestRecentEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.RecordGeneration(ctx, models.GenerationEvent{
			RequestID: id,
			Kind:      models.KindPlan,
			Status:    200,
			CreatedAt: at.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := s.RecentEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c", events[0].RequestID)
	assert.Equal(t, "b", events[1].RequestID)
	assert.True(t, events[0].CreatedAt.Equal(at.Add(2*time.Minute)))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordGeneration(context.Background(), models.GenerationEvent{RequestID: "x", Kind: models.KindImage, Status: 200}))
	require.NoError(t, s.Close())

	// schema creation is idempotent
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	summaries, err := s.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 1, summaries[0].Total)
}
