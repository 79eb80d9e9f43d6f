package domain

// DashboardCard is a headline card on a portal dashboard. Action is empty
// for cards without a button.
type DashboardCard struct {
	Title  string   `json:"title"`
	Lines  []string `json:"lines"`
	Action string   `json:"action,omitempty"`
}

// Dashboard is the landing tab of every portal.
type Dashboard struct {
	Greeting string          `json:"greeting"`
	Cards    []DashboardCard `json:"cards"`
}

// Appointment is a scheduled visit, seen from either side.
type Appointment struct {
	ID        int    `json:"id"`
	With      string `json:"with"`
	Specialty string `json:"specialty,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Message is an inbox entry in the patient portal.
type Message struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Preview string `json:"preview"`
}

// CaseSummary is an anonymized case in the doctor's case browser or a
// researcher's case insights.
type CaseSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Patient   string `json:"patient,omitempty"`
	Symptoms  string `json:"symptoms,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// Consultation is a scheduled video call.
type Consultation struct {
	ID          int    `json:"id"`
	Participant string `json:"participant"`
	ScheduledAt string `json:"scheduled_at"`
}

// Collaboration is a research team the researcher belongs to.
type Collaboration struct {
	ID    int    `json:"id"`
	Team  string `json:"team"`
	Topic string `json:"topic"`
}

// AnalysisTool is an entry of the data-analysis tab.
type AnalysisTool struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
