// Package catalog holds the static demo datasets each portal is seeded with.
package catalog

import (
	"fmt"
	"slices"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

const avatarBaseURL = "https://ik.imagekit.io/lsqgqcqgy/"

// Persona is the built-in identity shown when the login dialog leaves the
// username blank.
type Persona struct {
	DisplayName string
	AvatarURL   string
}

// Catalog is read-only after construction. Every accessor returns a copy.
type Catalog struct {
	personas            map[domain.PortalKind]Persona
	dashboards          map[domain.PortalKind]domain.Dashboard
	doctors             []domain.Doctor
	patients            []domain.Patient
	publications        []domain.Publication
	patientAppointments []domain.Appointment
	messages            []domain.Message
	doctorAppointments  []domain.Appointment
	cases               []domain.CaseSummary
	consultations       []domain.Consultation
	collaborations      []domain.Collaboration
	analysisTools       []domain.AnalysisTool
	caseInsights        []domain.CaseSummary
}

// Default returns the demo datasets.
func Default() *Catalog {
	c := &Catalog{}
	seedPersonas(c)
	seedDashboards(c)
	seedPatientPortal(c)
	seedDoctorPortal(c)
	seedResearcherPortal(c)
	return c
}

func (c *Catalog) Persona(kind domain.PortalKind) Persona { return c.personas[kind] }

func (c *Catalog) Dashboard(kind domain.PortalKind) domain.Dashboard {
	d := c.dashboards[kind]
	d.Cards = slices.Clone(d.Cards)
	for i := range d.Cards {
		d.Cards[i].Lines = slices.Clone(d.Cards[i].Lines)
	}
	return d
}

func (c *Catalog) Doctors() []domain.Doctor { return slices.Clone(c.doctors) }
func (c *Catalog) Patients() []domain.Patient { return slices.Clone(c.patients) }
func (c *Catalog) Publications() []domain.Publication { return slices.Clone(c.publications) }
func (c *Catalog) PatientAppointments() []domain.Appointment { return slices.Clone(c.patientAppointments) }
func (c *Catalog) Messages() []domain.Message { return slices.Clone(c.messages) }
func (c *Catalog) DoctorAppointments() []domain.Appointment { return slices.Clone(c.doctorAppointments) }
func (c *Catalog) Cases() []domain.CaseSummary { return slices.Clone(c.cases) }
func (c *Catalog) Consultations() []domain.Consultation { return slices.Clone(c.consultations) }
func (c *Catalog) Collaborations() []domain.Collaboration { return slices.Clone(c.collaborations) }
func (c *Catalog) AnalysisTools() []domain.AnalysisTool { return slices.Clone(c.analysisTools) }
func (c *Catalog) CaseInsights() []domain.CaseSummary { return slices.Clone(c.caseInsights) }

// Listing returns the searchable dataset of a portal in display order.
func (c *Catalog) Listing(kind domain.PortalKind) []domain.Listing {
	switch kind {
	case domain.PortalPatient:
		return toListing(c.doctors)
	case domain.PortalDoctor:
		return toListing(c.patients)
	case domain.PortalResearcher:
		return toListing(c.publications)
	}
	return nil
}

func toListing[T domain.Listing](records []T) []domain.Listing {
	out := make([]domain.Listing, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	return out
}

func seedPersonas(c *Catalog) {
	c.personas = map[domain.PortalKind]Persona{
		domain.PortalPatient:    {DisplayName: "John Doe", AvatarURL: avatarBaseURL + "avatar_JD.png"},
		domain.PortalDoctor:     {DisplayName: "Dr. Jane Smith", AvatarURL: avatarBaseURL + "avatar_JS.png"},
		domain.PortalResearcher: {DisplayName: "Dr. Emily Johnson", AvatarURL: avatarBaseURL + "avatar_EJ.png"},
	}
}

func seedDashboards(c *Catalog) {
	c.dashboards = map[domain.PortalKind]domain.Dashboard{
		domain.PortalPatient: {
			Greeting: "Welcome back, John!",
			Cards: []domain.DashboardCard{
				{Title: "Upcoming Appointment", Lines: []string{"Dr. Smith - Rare Genetic Disorders", "June 15, 2023 at 10:00 AM"}},
				{Title: "Recent Messages", Lines: []string{"You have 2 unread messages"}},
			},
		},
		domain.PortalDoctor: {
			Greeting: "Welcome, Dr. Smith!",
			Cards: []domain.DashboardCard{
				{Title: "Today's Schedule", Lines: []string{"You have 5 appointments today"}, Action: "View Schedule"},
				{Title: "New Patient Requests", Lines: []string{"You have 3 new patient requests"}, Action: "Review Requests"},
			},
		},
		domain.PortalResearcher: {
			Greeting: "Welcome, Dr. Johnson!",
			Cards: []domain.DashboardCard{
				{Title: "Recent Publications", Lines: []string{"You have 2 new publications this month"}, Action: "View Publications"},
				{Title: "Ongoing Collaborations", Lines: []string{"You are part of 3 active research teams"}, Action: "View Collaborations"},
			},
		},
	}
}

func seedPatientPortal(c *Catalog) {
	c.doctors = []domain.Doctor{
		{ID: 1, Name: "Dr. Emily Chen", Specialty: "Rare Genetic Disorders", Rating: 4.9},
		{ID: 2, Name: "Dr. Michael Lee", Specialty: "Rare Metabolic Diseases", Rating: 4.7},
		{ID: 3, Name: "Dr. Sarah Johnson", Specialty: "Rare Pediatric Conditions", Rating: 4.8},
		{ID: 4, Name: "Dr. David Brown", Specialty: "Rare Neurological Disorders", Rating: 4.6},
		{ID: 5, Name: "Dr. Lisa Taylor", Specialty: "Rare Autoimmune Diseases", Rating: 4.9},
	}
	for i := range c.doctors {
		c.doctors[i].AvatarURL = fmt.Sprintf("%sdoctor_%d.png", avatarBaseURL, c.doctors[i].ID)
	}
	c.patientAppointments = []domain.Appointment{
		{ID: 1, With: "Dr. Smith", Specialty: "Rare Genetic Disorders", Date: "June 15, 2023", Time: "10:00 AM"},
		{ID: 2, With: "Dr. Johnson", Specialty: "Rare Autoimmune Diseases", Date: "June 18, 2023", Time: "2:00 PM"},
		{ID: 3, With: "Dr. Williams", Specialty: "Rare Neurological Conditions", Date: "June 20, 2023", Time: "11:30 AM"},
	}
	for i := 1; i <= 3; i++ {
		c.messages = append(c.messages, domain.Message{
			ID:      i,
			From:    fmt.Sprintf("Dr. Johnson %d", i),
			Preview: "Re: Your recent appointment",
		})
	}
}

func seedDoctorPortal(c *Catalog) {
	c.patients = []domain.Patient{
		{ID: 1, Name: "John Doe", LastVisit: "May 15, 2023", Condition: "Rare Genetic Disorder"},
		{ID: 2, Name: "Jane Smith", LastVisit: "May 20, 2023", Condition: "Rare Autoimmune Disease"},
		{ID: 3, Name: "Mike Johnson", LastVisit: "May 25, 2023", Condition: "Rare Metabolic Disorder"},
		{ID: 4, Name: "Emily Brown", LastVisit: "June 1, 2023", Condition: "Rare Neurological Condition"},
		{ID: 5, Name: "David Lee", LastVisit: "June 5, 2023", Condition: "Rare Hematological Disorder"},
	}
	for i := range c.patients {
		c.patients[i].AvatarURL = fmt.Sprintf("%spatient_%d.png", avatarBaseURL, c.patients[i].ID)
	}
	for i := 1; i <= 3; i++ {
		c.doctorAppointments = append(c.doctorAppointments, domain.Appointment{
			ID:   i,
			With: fmt.Sprintf("Sarah Johnson %d", i),
			Date: fmt.Sprintf("June %d, 2023", 15+i),
			Time: "10:00 AM",
		})
		c.cases = append(c.cases, domain.CaseSummary{
			ID:       i,
			Title:    fmt.Sprintf("Case #%d", i),
			Patient:  "Anonymous",
			Symptoms: "Unusual skin rash, joint pain",
		})
		c.consultations = append(c.consultations, domain.Consultation{
			ID:          i,
			Participant: fmt.Sprintf("Patient %d", i),
			ScheduledAt: fmt.Sprintf("June %d, 2023 at 2:00 PM", 20+i),
		})
	}
}

func seedResearcherPortal(c *Catalog) {
	c.publications = []domain.Publication{
		{ID: 1, Title: "Advances in Rare Disease Genomics", Date: "May 10, 2023", Journal: "Journal of Rare Disorders"},
		{ID: 2, Title: "AI in Rare Disease Diagnosis", Date: "April 15, 2023", Journal: "Artificial Intelligence in Medicine"},
		{ID: 3, Title: "Novel Treatments for Rare Metabolic Disorders", Date: "March 22, 2023", Journal: "Rare Disease Therapeutics"},
		{ID: 4, Title: "Genetic Counseling in the Era of Precision Medicine", Date: "February 5, 2023", Journal: "Journal of Genetic Counseling"},
		{ID: 5, Title: "Rare Disease Registries: A Global Perspective", Date: "January 18, 2023", Journal: "Orphanet Journal of Rare Diseases"},
	}
	for i, name := range []string{"Rare Disease Prevalence", "Treatment Efficacy", "Genetic Variant Analysis"} {
		c.analysisTools = append(c.analysisTools, domain.AnalysisTool{
			ID:          i + 1,
			Name:        name,
			Description: "Analyze anonymized data",
		})
	}
	for i := 1; i <= 3; i++ {
		c.collaborations = append(c.collaborations, domain.Collaboration{
			ID:    i,
			Team:  fmt.Sprintf("Research Team %d", i),
			Topic: "Rare Disease Genomics",
		})
		c.caseInsights = append(c.caseInsights, domain.CaseSummary{
			ID:        i,
			Title:     fmt.Sprintf("Case Study #%d", i),
			Condition: "Ultra-Rare Genetic Disorder",
		})
	}
}
