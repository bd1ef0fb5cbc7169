package core

import "lumina/backend/models"

// The topic hand-off is a two-phase transition: HandleTopicAction clears the
// selected topic and parks the new topic/view as pending ("clearing"); the
// first observation after that commits the pending pair. Consumers therefore
// see the cleared state exactly once before the new topic appears, and can
// never observe a stale topic together with the new view.
type handoffPhase int

const (
	handoffIdle handoffPhase = iota
	handoffClearing
)

type topicHandoff struct {
	phase handoffPhase
	topic string
	view  models.View
}

// NavigationState is what an observer sees: the active view, the selected
// topic, and whether a hand-off is still clearing.
type NavigationState struct {
	ActiveView    models.View `json:"activeView"`
	SelectedTopic string      `json:"selectedTopic"`
	Clearing      bool        `json:"clearing"`
}

// SetActiveView switches tabs unconditionally. Views that need a resident
// syllabus or progress do their own guard rendering.
func (s *State) SetActiveView(view models.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeView = view
}

// HandleTopicAction starts a hand-off to targetView focused on topic. Any
// previously selected topic is dropped immediately; the new topic and view
// take effect on the next observation.
func (s *State) HandleTopicAction(topic string, targetView models.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedTopic = ""
	s.handoff = topicHandoff{phase: handoffClearing, topic: topic, view: targetView}
}

// ObserveNavigation reports the navigation state and advances a pending
// hand-off: the observation that sees "clearing" is the one that commits it.
func (s *State) ObserveNavigation() NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	observed := NavigationState{
		ActiveView:    s.activeView,
		SelectedTopic: s.selectedTopic,
		Clearing:      s.handoff.phase == handoffClearing,
	}
	s.commitHandoffLocked()
	return observed
}

// ClearSelectedTopic is called by the consuming view once it has picked up
// the topic.
func (s *State) ClearSelectedTopic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTopic = ""
	s.handoff = topicHandoff{}
}

func (s *State) commitHandoffLocked() {
	if s.handoff.phase != handoffClearing {
		return
	}
	s.selectedTopic = s.handoff.topic
	s.activeView = s.handoff.view
	s.handoff = topicHandoff{}
}
