package models

// View names one of the application tabs.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewQuiz      View = "quiz"
	ViewTutor     View = "tutor"
	ViewAnalytics View = "analytics"
	ViewMap       View = "map"
)

// DefaultView is the tab shown after login and after logout.
const DefaultView = ViewDashboard

func ValidView(v View) bool {
	switch v {
	case ViewDashboard, ViewQuiz, ViewTutor, ViewAnalytics, ViewMap:
		return true
	}
	return false
}
