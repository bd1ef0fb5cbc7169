package models

// MCQ is the question shape exchanged with the external quiz engine.
type MCQ struct {
	ID                 string     `json:"id"`
	Question           string     `json:"question"`
	Options            []string   `json:"options"`
	CorrectAnswerIndex int        `json:"correctAnswerIndex"`
	Difficulty         Difficulty `json:"difficulty"`
	ConceptTag         string     `json:"conceptTag"`
	Explanation        string     `json:"explanation"`
}

// ChatMessage is a single turn in the tutor chat. Transient — the tutor
// collaborator owns its persistence, not this core.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}
