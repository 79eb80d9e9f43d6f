package domain

// Tab selects a sub-view inside a portal.
type Tab string

const (
	TabDashboard Tab = "dashboard"

	// patient
	TabSubmitCase   Tab = "submit-case"
	TabDoctors      Tab = "doctors"
	TabAppointments Tab = "appointments"
	TabMessages     Tab = "messages"

	// doctor
	TabPatients      Tab = "patients"
	TabCases         Tab = "cases"
	TabConsultations Tab = "consultations"

	// researcher
	TabPublications  Tab = "publications"
	TabCollaboration Tab = "collaboration"
	TabDataAnalysis  Tab = "data-analysis"
	TabCaseInsights  Tab = "case-insights"
)
