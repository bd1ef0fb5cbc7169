package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lumina/backend/models"
	"lumina/backend/store"
)

// UploadSyllabus replaces the resident syllabus wholesale and resets
// progress for the new document, then switches the active view to the
// roadmap. Two store writes, syllabus first; there is no rollback if the
// second fails. Returns false (no-op) when no user is logged in.
func (s *State) UploadSyllabus(ctx context.Context, doc models.Syllabus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	for i := range doc.Units {
		if doc.Units[i].ID == "" {
			doc.Units[i].ID = uuid.NewString()
		}
	}
	if doc.UploadDate == "" {
		doc.UploadDate = time.Now().UTC().Format(time.RFC3339)
	}

	regNo := s.user.RegNo
	s.syllabus = &doc
	store.SetJSON(ctx, s.store, store.SyllabusKey(regNo), doc)

	fresh := models.NewProgress(doc.ID)
	s.progress = &fresh
	store.SetJSON(ctx, s.store, store.ProgressKey(regNo), fresh)

	s.activeView = models.ViewMap
	s.logger.Printf("syllabus: uploaded %s for %s", doc.ID, regNo)
	return true
}
