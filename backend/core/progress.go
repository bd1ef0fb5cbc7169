package core

import (
	"context"

	"lumina/backend/models"
	"lumina/backend/store"
)

// UpdateProgress field-wise merges the partial update over the resident
// record and persists the result. Supplied fields overwrite, omitted fields
// keep their prior values; a supplied gap list replaces the resident one
// wholesale. Silent no-op (returns false) when there is no active user or
// no resident progress record.
func (s *State) UpdateProgress(ctx context.Context, upd models.ProgressUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.progress == nil {
		return false
	}

	merged := upd.Apply(*s.progress)
	s.progress = &merged
	store.SetJSON(ctx, s.store, store.ProgressKey(s.user.RegNo), merged)
	return true
}
