package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/backend/models"
	"lumina/backend/store"
)

func TestUpdateProgressMergesSuppliedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())

	score := 10
	attempted := 5
	ok := state.UpdateProgress(ctx, models.ProgressUpdate{Score: &score, TotalAttempted: &attempted})
	require.True(t, ok)

	progress, _ := state.Progress()
	assert.Equal(t, 10, progress.Score)
	assert.Equal(t, 5, progress.TotalAttempted)
	assert.Equal(t, models.DifficultyEasy, progress.CurrentLevel, "omitted fields keep prior values")
	assert.Equal(t, "s1", progress.SyllabusID)
	assert.Empty(t, progress.Gaps)
}

func TestUpdateProgressReplacesGapsWholesale(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())

	score := 10
	attempted := 5
	state.UpdateProgress(ctx, models.ProgressUpdate{Score: &score, TotalAttempted: &attempted})

	gaps := []models.KnowledgeGap{{Concept: "Cells", MissedCount: 1, LastTested: "t1"}}
	state.UpdateProgress(ctx, models.ProgressUpdate{Gaps: &gaps})

	progress, _ := state.Progress()
	assert.Equal(t, 10, progress.Score)
	assert.Equal(t, 5, progress.TotalAttempted)
	assert.Equal(t, gaps, progress.Gaps)

	// Last write wins: a second gap list replaces the first entirely, no
	// per-concept merge.
	replacement := []models.KnowledgeGap{{Concept: "Osmosis", MissedCount: 2, LastTested: "t2"}}
	state.UpdateProgress(ctx, models.ProgressUpdate{Gaps: &replacement})

	progress, _ = state.Progress()
	require.Len(t, progress.Gaps, 1)
	assert.Equal(t, "Osmosis", progress.Gaps[0].Concept)
}

func TestUpdateProgressEmptyGapListStillReplaces(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())

	gaps := []models.KnowledgeGap{{Concept: "Cells", MissedCount: 1, LastTested: "t1"}}
	state.UpdateProgress(ctx, models.ProgressUpdate{Gaps: &gaps})

	empty := []models.KnowledgeGap{}
	state.UpdateProgress(ctx, models.ProgressUpdate{Gaps: &empty})

	progress, _ := state.Progress()
	assert.Empty(t, progress.Gaps, "a supplied empty list clears the gaps")
}

func TestUpdateProgressLevelTransitions(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())

	for _, level := range []models.Difficulty{
		models.DifficultyMedium,
		models.DifficultyHard,
		models.DifficultyEasy,
	} {
		l := level
		ok := state.UpdateProgress(ctx, models.ProgressUpdate{CurrentLevel: &l})
		require.True(t, ok)
		progress, _ := state.Progress()
		assert.Equal(t, level, progress.CurrentLevel)
	}
}

func TestUpdateProgressWithoutUserIsNoOp(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	score := 10
	ok := state.UpdateProgress(ctx, models.ProgressUpdate{Score: &score})
	assert.False(t, ok)
	assert.Equal(t, 0, kv.Len())
}

func TestUpdateProgressWithoutResidentProgressIsNoOp(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	state.Login(ctx, alice())
	before, _ := kv.Get(ctx, store.CurrentUserKey)

	score := 10
	ok := state.UpdateProgress(ctx, models.ProgressUpdate{Score: &score})
	assert.False(t, ok)

	_, resident := kv.Get(ctx, store.ProgressKey("R1"))
	assert.False(t, resident, "no progress document may appear")
	after, _ := kv.Get(ctx, store.CurrentUserKey)
	assert.Equal(t, before, after, "persisted state must be untouched")
}

func TestUpdateProgressPersistsMergedRecord(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())

	score := 30
	level := models.DifficultyHard
	state.UpdateProgress(ctx, models.ProgressUpdate{Score: &score, CurrentLevel: &level})

	stored, ok := store.GetJSON[models.UserProgress](ctx, kv, store.ProgressKey("R1"))
	require.True(t, ok)
	assert.Equal(t, 30, stored.Score)
	assert.Equal(t, models.DifficultyHard, stored.CurrentLevel)
	assert.Equal(t, "s1", stored.SyllabusID)
}
