// Package core owns the application session state: the current user, the
// resident syllabus and progress documents, and the navigation state. All
// mutation goes through the contracts defined here; controllers and views
// only ever see copies.
package core

import (
	"log"
	"sync"

	"lumina/backend/models"
	"lumina/backend/store"
)

type State struct {
	mu     sync.Mutex
	store  store.Store
	logger *log.Logger

	user     *models.User
	syllabus *models.Syllabus
	progress *models.UserProgress

	activeView    models.View
	selectedTopic string
	handoff       topicHandoff
}

func NewState(s store.Store, logger *log.Logger) *State {
	return &State{
		store:      s,
		logger:     logger,
		activeView: models.DefaultView,
	}
}

// User returns a copy of the current user, if any.
func (s *State) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Syllabus returns a copy of the resident syllabus, if any.
func (s *State) Syllabus() (models.Syllabus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syllabus == nil {
		return models.Syllabus{}, false
	}
	return copySyllabus(*s.syllabus), true
}

// Progress returns a copy of the resident progress record, if any.
func (s *State) Progress() (models.UserProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.progress == nil {
		return models.UserProgress{}, false
	}
	return copyProgress(*s.progress), true
}

// Snapshot is the read-only prop contract handed to the view layer.
type Snapshot struct {
	User          *models.User         `json:"user"`
	Syllabus      *models.Syllabus     `json:"syllabus"`
	Progress      *models.UserProgress `json:"progress"`
	ActiveView    models.View          `json:"activeView"`
	SelectedTopic string               `json:"selectedTopic"`
}

// Snapshot returns the full render state. Reading it counts as an
// observation of the navigation state and commits a pending topic hand-off
// (see navigation.go).
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ActiveView:    s.activeView,
		SelectedTopic: s.selectedTopic,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.syllabus != nil {
		doc := copySyllabus(*s.syllabus)
		snap.Syllabus = &doc
	}
	if s.progress != nil {
		p := copyProgress(*s.progress)
		snap.Progress = &p
	}
	s.commitHandoffLocked()
	return snap
}

func copySyllabus(doc models.Syllabus) models.Syllabus {
	units := make([]models.SyllabusUnit, len(doc.Units))
	for i, u := range doc.Units {
		u.Concepts = append([]models.Concept{}, u.Concepts...)
		units[i] = u
	}
	doc.Units = units
	return doc
}

func copyProgress(p models.UserProgress) models.UserProgress {
	p.Gaps = append([]models.KnowledgeGap{}, p.Gaps...)
	return p
}
