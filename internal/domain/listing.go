package domain

// Listing is one static, searchable record of a portal's dataset.
type Listing interface {
	// SearchFields returns the text fields the portal search matches against.
	SearchFields() []string
}

// Doctor is listed in the patient portal's "Find Doctors" tab.
type Doctor struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	AvatarURL string  `json:"avatar_url"`
}

func (d Doctor) SearchFields() []string { return []string{d.Name, d.Specialty} }

// Patient is listed in the doctor portal's "Patients" tab.
type Patient struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	LastVisit string `json:"last_visit"`
	Condition string `json:"condition"`
	AvatarURL string `json:"avatar_url"`
}

func (p Patient) SearchFields() []string { return []string{p.Name, p.Condition} }

// Publication is listed in the researcher portal's "Publications" tab.
type Publication struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Journal string `json:"journal"`
}

func (p Publication) SearchFields() []string { return []string{p.Title, p.Journal} }
