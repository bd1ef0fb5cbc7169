package core

import (
	"context"

	"lumina/backend/models"
	"lumina/backend/store"
)

// Login sets user as the current session identity and persists it under the
// fixed key. The record is trusted as-is — authentication happened upstream.
// Any syllabus/progress documents left in the store by a prior session with
// the same registration number are picked up again.
func (s *State) Login(ctx context.Context, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	store.SetJSON(ctx, s.store, store.CurrentUserKey, user)
	s.loadUserDocumentsLocked(ctx, user.RegNo)
	s.logger.Printf("session: login %s", user.RegNo)
}

// Logout clears every piece of session-derived state: user, resident
// syllabus and progress, selected topic, and the active view (back to the
// default). Only the current-user key is removed from the store — the
// user-scoped documents stay behind for the next login with the same
// registration number.
func (s *State) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.syllabus = nil
	s.progress = nil
	s.store.Remove(ctx, store.CurrentUserKey)
	s.activeView = models.DefaultView
	s.selectedTopic = ""
	s.handoff = topicHandoff{}
	s.logger.Printf("session: logout")
}

// RestoreSession re-establishes identity from the fixed key. An absent or
// corrupt record yields "no session" rather than an error.
func (s *State) RestoreSession(ctx context.Context) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := store.GetJSON[models.User](ctx, s.store, store.CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	s.user = &user
	s.loadUserDocumentsLocked(ctx, user.RegNo)
	s.logger.Printf("session: restored %s", user.RegNo)
	return user, true
}

// loadUserDocumentsLocked best-effort loads the user-scoped syllabus and
// progress documents. Missing or corrupt entries leave the slots empty.
func (s *State) loadUserDocumentsLocked(ctx context.Context, regNo string) {
	s.syllabus = nil
	s.progress = nil
	if doc, ok := store.GetJSON[models.Syllabus](ctx, s.store, store.SyllabusKey(regNo)); ok {
		s.syllabus = &doc
	}
	if p, ok := store.GetJSON[models.UserProgress](ctx, s.store, store.ProgressKey(regNo)); ok {
		s.progress = &p
	}
}
