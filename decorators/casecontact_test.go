package decorators_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/casa-court-report/decorators"
	"github.com/linesmerrill/casa-court-report/models"
)

func contactType(name string) models.ContactType {
	return models.ContactType{ID: primitive.NewObjectID(), Details: models.ContactTypeDetails{Name: name, GroupName: "Group X", Active: true}}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 minutes"},
		{30, "30 minutes"},
		{59, "59 minutes"},
		{60, "1 hours 0 minutes"},
		{99, "1 hours 39 minutes"},
		{135, "2 hours 15 minutes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decorators.FormatDuration(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestFormatContactMade(t *testing.T) {
	assert.Equal(t, "No Contact Made", decorators.FormatContactMade(false))
	assert.Empty(t, decorators.FormatContactMade(true))
}

func TestFormatContactTypes(t *testing.T) {
	assert.Equal(t, "No contact type specified", decorators.FormatContactTypes(nil))
	assert.Equal(t, "No contact type specified", decorators.FormatContactTypes([]string{}))
	assert.Equal(t, "School", decorators.FormatContactTypes([]string{"School"}))
	assert.Equal(t, "School and Therapist", decorators.FormatContactTypes([]string{"School", "Therapist"}))
	assert.Equal(t, "School, Therapist, and Bio Parent", decorators.FormatContactTypes([]string{"School", "Therapist", "Bio Parent"}))
	assert.Equal(t, "A, B, C, and D", decorators.FormatContactTypes([]string{"A", "B", "C", "D"}))
}

func TestFormatContactTypesDoesNotMutateInput(t *testing.T) {
	names := []string{"School", "Therapist", "Bio Parent"}
	_ = decorators.FormatContactTypes(names)
	assert.Equal(t, []string{"School", "Therapist", "Bio Parent"}, names)
}

func TestMediumIcon(t *testing.T) {
	tests := map[string]string{
		"in-person":  "users",
		"text/email": "envelope",
		"video":      "video",
		"voice-only": "phone-square-alt",
		"letter":     "file-alt",
		"foo":        "question",
		"":           "question",
		"IN-PERSON":  "question",
	}
	for medium, icon := range tests {
		assert.Equal(t, icon, decorators.MediumIcon(medium), "medium=%q", medium)
	}
}

func TestMediumIconClasses(t *testing.T) {
	assert.Equal(t, "fas fa-users", decorators.MediumIconClasses(models.MediumInPerson))
	assert.Equal(t, "fas fa-phone-square-alt", decorators.MediumIconClasses(models.MediumVoiceOnly))
	assert.Equal(t, "fas fa-question", decorators.MediumIconClasses("carrier pigeon"))
}

func TestMediumIconCoversEveryKnownMedium(t *testing.T) {
	for _, medium := range models.ContactMediums {
		assert.NotEqual(t, "question", decorators.MediumIcon(medium), "medium=%q", medium)
	}
}

func subheadingContact(contactMade bool) models.CaseContact {
	return models.CaseContact{
		ID: primitive.NewObjectID(),
		Details: models.CaseContactDetails{
			OccurredAt:               primitive.NewDateTimeFromTime(time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)),
			DurationMinutes:          99,
			ContactMade:              contactMade,
			MilesDriven:              100,
			WantDrivingReimbursement: true,
		},
	}
}

func TestCaseContactDecorator_Subheading(t *testing.T) {
	d := decorators.Decorate(subheadingContact(false), []models.ContactType{contactType("Type X")})

	assert.Equal(t, "December 1, 2020 | 1 hour 39 minutes | No Contact Made | 100 miles driven | Reimbursement", d.Subheading())
}

func TestCaseContactDecorator_SubheadingWithoutExtraPipes(t *testing.T) {
	d := decorators.Decorate(subheadingContact(true), []models.ContactType{contactType("Type X")})

	assert.Equal(t, "December 1, 2020 | 1 hour 39 minutes | 100 miles driven | Reimbursement", d.Subheading())
}

func TestCaseContactDecorator_SubheadingWithoutReimbursement(t *testing.T) {
	c := subheadingContact(true)
	c.Details.WantDrivingReimbursement = false
	c.Details.DurationMinutes = 135
	c.Details.MilesDriven = 0

	assert.Equal(t, "December 1, 2020 | 2 hours 15 minutes | 0 miles driven", decorators.Decorate(c, nil).Subheading())
}

func TestCaseContactDecorator_SubheadingShortContact(t *testing.T) {
	c := subheadingContact(false)
	c.Details.DurationMinutes = 0

	assert.Equal(t, "December 1, 2020 | 0 minutes | No Contact Made | 100 miles driven | Reimbursement", decorators.Decorate(c, nil).Subheading())
}

func TestCaseContactDecorator_OccurredAtUsesLocation(t *testing.T) {
	c := subheadingContact(true)
	d := decorators.Decorate(c, nil)
	d.Location = time.FixedZone("UTC-5", -5*60*60)

	assert.Equal(t, "November 30, 2020", d.OccurredAt())
}

func TestCaseContactDecorator_Fields(t *testing.T) {
	c := subheadingContact(false)
	c.Details.MediumType = models.MediumTextEmail
	d := decorators.Decorate(c, []models.ContactType{contactType("School"), contactType("Therapist")})

	assert.Equal(t, "1 hours 39 minutes", d.DurationMinutes())
	assert.Equal(t, "No Contact Made", d.ContactMade())
	assert.Equal(t, []string{"School", "Therapist"}, d.ContactTypeNames())
	assert.Equal(t, "School and Therapist", d.ContactTypesText())
	assert.Equal(t, "envelope", d.MediumIcon())
	assert.Equal(t, "fas fa-envelope", d.MediumIconClasses())
}

func TestCaseContactDecorator_NoContactTypes(t *testing.T) {
	d := decorators.Decorate(subheadingContact(true), nil)

	assert.Empty(t, d.ContactTypeNames())
	assert.Equal(t, "No contact type specified", d.ContactTypesText())
}
