package core_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/backend/core"
	"lumina/backend/models"
	"lumina/backend/store"
)

func newTestState() (*core.State, *store.MemoryStore) {
	kv := store.NewMemoryStore()
	return core.NewState(kv, log.New(io.Discard, "", 0)), kv
}

func alice() models.User {
	return models.User{
		Name:    "Alice Carter",
		Email:   "alice@example.com",
		Picture: "https://example.com/alice.png",
		RegNo:   "R1",
	}
}

func bioSyllabus() models.Syllabus {
	return models.Syllabus{
		ID:      "s1",
		Subject: "Bio",
		Content: "photosynthesis, cells, osmosis",
		Units: []models.SyllabusUnit{
			{ID: "u1", Title: "Cell Biology", Concepts: []models.Concept{
				{Name: "Cells", Description: "The basic unit of life"},
			}},
		},
		UploadDate: "2026-01-10T00:00:00Z",
	}
}

func TestLoginThenRestoreYieldsSameUser(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	state.Login(ctx, alice())

	// A fresh state over the same store stands in for a restarted process.
	restarted := core.NewState(kv, log.New(io.Discard, "", 0))
	restored, ok := restarted.RestoreSession(ctx)
	require.True(t, ok)
	assert.Equal(t, alice(), restored)
}

func TestRestoreSessionAbsent(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	_, ok := state.RestoreSession(ctx)
	assert.False(t, ok)
	_, ok = state.User()
	assert.False(t, ok)
}

func TestRestoreSessionCorruptRecord(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	kv.Set(ctx, store.CurrentUserKey, []byte(`{"regNo": `))

	_, ok := state.RestoreSession(ctx)
	assert.False(t, ok, "corrupt record yields no session, not an error")
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())
	state.HandleTopicAction("Cells", models.ViewQuiz)
	state.ObserveNavigation()

	state.Logout(ctx)

	_, ok := state.User()
	assert.False(t, ok)
	_, ok = state.Syllabus()
	assert.False(t, ok)
	_, ok = state.Progress()
	assert.False(t, ok)

	nav := state.ObserveNavigation()
	assert.Equal(t, models.DefaultView, nav.ActiveView)
	assert.Empty(t, nav.SelectedTopic)

	_, ok = kv.Get(ctx, store.CurrentUserKey)
	assert.False(t, ok, "current-user key must be removed")
}

func TestLogoutKeepsUserScopedDocuments(t *testing.T) {
	ctx := context.Background()
	state, kv := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())
	state.Logout(ctx)

	// The documents stay orphaned in storage...
	_, ok := kv.Get(ctx, store.SyllabusKey("R1"))
	assert.True(t, ok)
	_, ok = kv.Get(ctx, store.ProgressKey("R1"))
	assert.True(t, ok)

	// ...and the next login with the same registration number resumes them.
	state.Login(ctx, alice())
	doc, ok := state.Syllabus()
	require.True(t, ok)
	assert.Equal(t, "s1", doc.ID)
	progress, ok := state.Progress()
	require.True(t, ok)
	assert.Equal(t, "s1", progress.SyllabusID)
}

func TestLoginLoadsOnlyOwnDocuments(t *testing.T) {
	ctx := context.Background()
	state, _ := newTestState()

	state.Login(ctx, alice())
	state.UploadSyllabus(ctx, bioSyllabus())
	state.Logout(ctx)

	bob := models.User{Name: "Bob", Email: "bob@example.com", RegNo: "R2"}
	state.Login(ctx, bob)

	_, ok := state.Syllabus()
	assert.False(t, ok, "R2 must not see R1's syllabus")
	_, ok = state.Progress()
	assert.False(t, ok)
}
