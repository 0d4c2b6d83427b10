// Package decorators turns raw case contact attributes into the display strings
// used by court reports and contact listings.
package decorators

import (
	"fmt"
	"strings"
	"time"

	"github.com/linesmerrill/casa-court-report/models"
)

// LongDateLayout renders dates as "December 1, 2020"
const LongDateLayout = "January 2, 2006"

const (
	noContactMade      = "No Contact Made"
	noContactType      = "No contact type specified"
	subheadingSep      = " | "
	reimbursementLabel = "Reimbursement"
	fallbackIcon       = "question"
)

var mediumIcons = map[string]string{
	models.MediumInPerson:  "users",
	models.MediumTextEmail: "envelope",
	models.MediumVideo:     "video",
	models.MediumVoiceOnly: "phone-square-alt",
	models.MediumLetter:    "file-alt",
}

// FormatDuration renders a contact length. Hours are never singularized, so 75
// minutes reads "1 hours 15 minutes".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
}

// FormatContactMade returns "No Contact Made" for a failed contact and an empty
// string otherwise.
func FormatContactMade(made bool) string {
	if made {
		return ""
	}
	return noContactMade
}

// FormatContactTypes joins contact type names into a sentence with an Oxford comma
func FormatContactTypes(names []string) string {
	switch len(names) {
	case 0:
		return noContactType
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// MediumIcon maps a contact medium to its font-awesome icon name. Unknown
// mediums get the question icon.
func MediumIcon(medium string) string {
	if icon, ok := mediumIcons[medium]; ok {
		return icon
	}
	return fallbackIcon
}

// MediumIconClasses returns the css classes for a medium's icon
func MediumIconClasses(medium string) string {
	return "fas fa-" + MediumIcon(medium)
}

// CaseContactDecorator wraps a case contact together with its resolved contact
// types so templates can ask for display values.
type CaseContactDecorator struct {
	Contact      models.CaseContact
	ContactTypes []models.ContactType

	// Location dates are shown in. Nil means UTC.
	Location *time.Location
}

// Decorate wraps a contact for display
func Decorate(contact models.CaseContact, contactTypes []models.ContactType) CaseContactDecorator {
	return CaseContactDecorator{Contact: contact, ContactTypes: contactTypes}
}

// OccurredAt returns the contact date in long form
func (d CaseContactDecorator) OccurredAt() string {
	return d.occurredAt().Format(LongDateLayout)
}

// DurationMinutes returns the formatted contact length
func (d CaseContactDecorator) DurationMinutes() string {
	return FormatDuration(d.Contact.Details.DurationMinutes)
}

// ContactMade returns "No Contact Made" or an empty string
func (d CaseContactDecorator) ContactMade() string {
	return FormatContactMade(d.Contact.Details.ContactMade)
}

// ContactTypeNames returns the names of the contact's types in the order they were recorded
func (d CaseContactDecorator) ContactTypeNames() []string {
	names := make([]string, 0, len(d.ContactTypes))
	for _, ct := range d.ContactTypes {
		names = append(names, ct.Details.Name)
	}
	return names
}

// ContactTypesText returns the contact types as a sentence
func (d CaseContactDecorator) ContactTypesText() string {
	return FormatContactTypes(d.ContactTypeNames())
}

// MediumIcon returns the icon name for the contact's medium
func (d CaseContactDecorator) MediumIcon() string {
	return MediumIcon(d.Contact.Details.MediumType)
}

// MediumIconClasses returns the css classes for the contact's medium
func (d CaseContactDecorator) MediumIconClasses() string {
	return MediumIconClasses(d.Contact.Details.MediumType)
}

// Subheading summarizes the contact on one line, e.g.
// "December 1, 2020 | 1 hour 39 minutes | No Contact Made | 100 miles driven | Reimbursement".
func (d CaseContactDecorator) Subheading() string {
	details := d.Contact.Details
	segments := []string{
		d.OccurredAt(),
		subheadingDuration(details.DurationMinutes),
		d.ContactMade(),
		fmt.Sprintf("%d miles driven", details.MilesDriven),
	}
	if details.WantDrivingReimbursement {
		segments = append(segments, reimbursementLabel)
	}
	return joinNonEmpty(segments, subheadingSep)
}

func (d CaseContactDecorator) occurredAt() time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return d.Contact.Details.OccurredAt.Time().In(loc)
}

// subheadingDuration pluralizes the hour unit, unlike FormatDuration
func subheadingDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	return fmt.Sprintf("%d %s %d minutes", hours, unit, minutes%60)
}

func joinNonEmpty(segments []string, sep string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}
