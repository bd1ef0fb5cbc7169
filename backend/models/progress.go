package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type KnowledgeGap struct {
	Concept     string `json:"concept"`
	MissedCount int    `json:"missedCount"`
	LastTested  string `json:"lastTested"`
}

// UserProgress is the adaptive-learning state. The quiz engine reads
// CurrentLevel to pick question difficulty and reports score/attempt/gap
// updates after each attempt. SyllabusID always references the currently
// resident syllabus.
type UserProgress struct {
	SyllabusID     string         `json:"syllabusId"`
	Score          int            `json:"score"`
	TotalAttempted int            `json:"totalAttempted"`
	CurrentLevel   Difficulty     `json:"currentLevel"`
	Gaps           []KnowledgeGap `json:"gaps"`
}

// NewProgress returns the fresh record installed whenever a syllabus is
// uploaded: zero score, zero attempts, Easy, no gaps.
func NewProgress(syllabusID string) UserProgress {
	return UserProgress{
		SyllabusID:     syllabusID,
		Score:          0,
		TotalAttempted: 0,
		CurrentLevel:   DifficultyEasy,
		Gaps:           []KnowledgeGap{},
	}
}

// ProgressUpdate is a partial UserProgress. Nil fields are "not supplied"
// and keep their prior value on merge; a non-nil Gaps replaces the resident
// gap list wholesale (no per-concept merge — callers read-modify-write the
// full list themselves).
type ProgressUpdate struct {
	SyllabusID     *string         `json:"syllabusId,omitempty"`
	Score          *int            `json:"score,omitempty"`
	TotalAttempted *int            `json:"totalAttempted,omitempty"`
	CurrentLevel   *Difficulty     `json:"currentLevel,omitempty"`
	Gaps           *[]KnowledgeGap `json:"gaps,omitempty"`
}

// Apply merges the update over prior and returns the result. Supplied
// fields overwrite, omitted fields carry over.
func (u ProgressUpdate) Apply(prior UserProgress) UserProgress {
	merged := prior
	if u.SyllabusID != nil {
		merged.SyllabusID = *u.SyllabusID
	}
	if u.Score != nil {
		merged.Score = *u.Score
	}
	if u.TotalAttempted != nil {
		merged.TotalAttempted = *u.TotalAttempted
	}
	if u.CurrentLevel != nil {
		merged.CurrentLevel = *u.CurrentLevel
	}
	if u.Gaps != nil {
		merged.Gaps = append([]KnowledgeGap{}, (*u.Gaps)...)
	}
	return merged
}
