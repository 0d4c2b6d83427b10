package reports

import (
	"github.com/linesmerrill/casa-court-report/documents"
)

// Placeholder names bound into court report templates, in context order
const (
	KeyCreatedDate  = "created_date"
	KeyCasaCase     = "casa_case"
	KeyCaseContacts = "case_contacts"
	KeyVolunteer    = "volunteer"
)

// Context is everything a court report template can show. It lives for one
// report generation and is never stored.
type Context struct {
	CreatedDate  string
	CasaCase     CasaCaseSummary
	CaseContacts []CaseContactSummary
	Volunteer    VolunteerSummary
}

// CasaCaseSummary describes the case the report is about
type CasaCaseSummary struct {
	ID                  string
	CaseNumber          string
	CourtDate           string
	TransitionAgedYouth bool
}

// CaseContactSummary is one decorated case contact
type CaseContactSummary struct {
	OccurredAt               string
	DurationMinutes          string
	ContactMade              string
	ContactTypes             string
	MediumType               string
	MediumIcon               string
	Subheading               string
	MilesDriven              int
	WantDrivingReimbursement bool
	Notes                    string
}

// VolunteerSummary describes the volunteer writing the report. SupervisorName
// is empty when the volunteer has no supervisor.
type VolunteerSummary struct {
	ID             string
	Name           string
	SupervisorName string
	AssignmentDate string
}

// Fields binds the context to template placeholders. The four top level keys
// always come back in the same order and case_contacts is always a list.
func (c Context) Fields() []documents.Field {
	contacts := make([]map[string]interface{}, 0, len(c.CaseContacts))
	for _, cc := range c.CaseContacts {
		contacts = append(contacts, cc.fields())
	}

	return []documents.Field{
		{Name: KeyCreatedDate, Value: c.CreatedDate},
		{Name: KeyCasaCase, Value: map[string]interface{}{
			"case_number":           c.CasaCase.CaseNumber,
			"court_date":            c.CasaCase.CourtDate,
			"transition_aged_youth": c.CasaCase.TransitionAgedYouth,
		}},
		{Name: KeyCaseContacts, Value: contacts},
		{Name: KeyVolunteer, Value: map[string]interface{}{
			"name":            c.Volunteer.Name,
			"supervisor_name": c.Volunteer.SupervisorName,
			"assignment_date": c.Volunteer.AssignmentDate,
		}},
	}
}

func (cc CaseContactSummary) fields() map[string]interface{} {
	return map[string]interface{}{
		"occurred_at":                cc.OccurredAt,
		"duration_minutes":           cc.DurationMinutes,
		"contact_made":               cc.ContactMade,
		"contact_types":              cc.ContactTypes,
		"medium_type":                cc.MediumType,
		"medium_icon":                cc.MediumIcon,
		"subheading":                 cc.Subheading,
		"miles_driven":               cc.MilesDriven,
		"want_driving_reimbursement": cc.WantDrivingReimbursement,
		"notes":                      cc.Notes,
	}
}
