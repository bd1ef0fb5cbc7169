package models

type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SyllabusUnit struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Concepts []Concept `json:"concepts"`
}

// Syllabus is the per-user curriculum document. It is created wholesale on
// upload and replaced wholesale on re-upload; there is no merge or
// versioning. One syllabus per user at a time.
type Syllabus struct {
	ID         string         `json:"id"`
	Subject    string         `json:"subject"`
	Content    string         `json:"content"`
	Units      []SyllabusUnit `json:"units"`
	UploadDate string         `json:"uploadDate"`
}
