package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/databases/mocks"
	"github.com/linesmerrill/casa-court-report/models"
	"github.com/linesmerrill/casa-court-report/reports"
)

type builderFixture struct {
	builder reports.Builder

	cdb  *mocks.CasaCaseDatabase
	udb  *mocks.UserDatabase
	adb  *mocks.CaseAssignmentDatabase
	svdb *mocks.SupervisorVolunteerDatabase
	ccdb *mocks.CaseContactDatabase
	ctdb *mocks.ContactTypeDatabase

	casaCase     *models.CasaCase
	volunteer    *models.User
	supervisor   *models.User
	school       models.ContactType
	therapist    models.ContactType
	caseContacts []models.CaseContact
}

func (f *builderFixture) caseID() string      { return f.casaCase.ID.Hex() }
func (f *builderFixture) volunteerID() string { return f.volunteer.ID.Hex() }

// newBuilderFixture wires a builder against mocks holding one case with a
// volunteer, a supervisor and five contacts.
func newBuilderFixture() *builderFixture {
	courtDate := primitive.NewDateTimeFromTime(now.AddDate(0, 0, 1))
	f := &builderFixture{
		cdb:  &mocks.CasaCaseDatabase{},
		udb:  &mocks.UserDatabase{},
		adb:  &mocks.CaseAssignmentDatabase{},
		svdb: &mocks.SupervisorVolunteerDatabase{},
		ccdb: &mocks.CaseContactDatabase{},
		ctdb: &mocks.ContactTypeDatabase{},
		casaCase: &models.CasaCase{
			ID: primitive.NewObjectID(),
			Details: models.CasaCaseDetails{
				CaseNumber: "CINA-11-1234",
				CourtDate:  &courtDate,
			},
		},
		volunteer: &models.User{
			ID:      primitive.NewObjectID(),
			Details: models.UserDetails{DisplayName: "Jane Volunteer", Role: models.RoleVolunteer},
		},
		supervisor: &models.User{
			ID:      primitive.NewObjectID(),
			Details: models.UserDetails{DisplayName: "Sam Supervisor", Role: models.RoleSupervisor},
		},
		school:    models.ContactType{ID: primitive.NewObjectID(), Details: models.ContactTypeDetails{Name: "School", Active: true}},
		therapist: models.ContactType{ID: primitive.NewObjectID(), Details: models.ContactTypeDetails{Name: "Therapist", Active: false}},
	}

	f.caseContacts = fiveContacts()
	f.caseContacts[0].Details.ContactTypeIDs = []string{f.therapist.ID.Hex(), f.school.ID.Hex()}
	f.caseContacts[0].Details.DurationMinutes = 135
	f.caseContacts[0].Details.MediumType = models.MediumVideo
	f.caseContacts[1].Details.ContactTypeIDs = []string{"not-an-id", primitive.NewObjectID().Hex()}
	f.caseContacts[1].Details.ContactMade = true

	f.builder = reports.Builder{
		CDB:  f.cdb,
		UDB:  f.udb,
		ADB:  f.adb,
		SVDB: f.svdb,
		CCDB: f.ccdb,
		CTDB: f.ctdb,
		Now:  func() time.Time { return now },
	}

	f.cdb.On("FindOne", mock.Anything, bson.M{"_id": f.casaCase.ID}).Return(f.casaCase, nil)
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": f.volunteer.ID}).Return(f.volunteer, nil)
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": f.supervisor.ID}).Return(f.supervisor, nil)
	f.adb.On("FindOne", mock.Anything, bson.M{
		"caseAssignment.casaCaseID":  f.caseID(),
		"caseAssignment.volunteerID": f.volunteerID(),
		"caseAssignment.active":      true,
	}).Return(&models.CaseAssignment{Details: models.CaseAssignmentDetails{
		CasaCaseID:  f.caseID(),
		VolunteerID: f.volunteerID(),
		Active:      true,
		CreatedAt:   primitive.NewDateTimeFromTime(time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC)),
	}}, nil)
	f.svdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.SupervisorVolunteer{Details: models.SupervisorVolunteerDetails{
		SupervisorID: f.supervisor.ID.Hex(),
		VolunteerID:  f.volunteerID(),
		Active:       true,
	}}, nil)
	f.ccdb.On("Find", mock.Anything, bson.M{"caseContact.casaCaseID": f.caseID()}, mock.Anything).
		Return(func(context.Context, interface{}, ...*options.FindOptions) []models.CaseContact { return f.caseContacts }, nil)
	f.ctdb.On("Find", mock.Anything, mock.Anything).Return([]models.ContactType{f.school, f.therapist}, nil)
	return f
}

func TestBuilder_Build(t *testing.T) {
	f := newBuilderFixture()

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Equal(t, "March 15, 2021", reportCtx.CreatedDate)
	assert.Equal(t, "CINA-11-1234", reportCtx.CasaCase.CaseNumber)
	assert.Equal(t, "March 16, 2021", reportCtx.CasaCase.CourtDate)
	assert.Equal(t, "Jane Volunteer", reportCtx.Volunteer.Name)
	assert.Equal(t, "Sam Supervisor", reportCtx.Volunteer.SupervisorName)
	assert.Equal(t, "June 1, 2020", reportCtx.Volunteer.AssignmentDate)

	require.Len(t, reportCtx.CaseContacts, 5)
	first := reportCtx.CaseContacts[0]
	assert.Equal(t, "March 10, 2021", first.OccurredAt)
	assert.Equal(t, "far past", first.Notes)

	typed := reportCtx.CaseContacts[1]
	assert.Equal(t, "Therapist and School", typed.ContactTypes)
	assert.Equal(t, "2 hours 15 minutes", typed.DurationMinutes)
	assert.Equal(t, "No Contact Made", typed.ContactMade)
	assert.Equal(t, "video", typed.MediumIcon)
	assert.Equal(t, "March 14, 2021 | 2 hours 15 minutes | No Contact Made | 0 miles driven", typed.Subheading)

	unknownTypes := reportCtx.CaseContacts[2]
	assert.Equal(t, "No contact type specified", unknownTypes.ContactTypes)
	assert.Empty(t, unknownTypes.ContactMade)
	assert.Equal(t, "question", unknownTypes.MediumIcon)
}

func TestBuilder_BuildWithPastCourtDate(t *testing.T) {
	f := newBuilderFixture()
	f.casaCase.Details.PastCourtDates = []models.PastCourtDate{
		{Date: primitive.NewDateTimeFromTime(daysAgo(2))},
	}

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Len(t, reportCtx.CaseContacts, 4)
	for _, c := range reportCtx.CaseContacts {
		assert.NotEqual(t, "far past", c.Notes)
	}
}

func TestBuilder_BuildCourtDateAlreadyHeld(t *testing.T) {
	f := newBuilderFixture()
	held := primitive.NewDateTimeFromTime(daysAgo(2))
	f.casaCase.Details.CourtDate = &held

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Empty(t, reportCtx.CasaCase.CourtDate)
	assert.Len(t, reportCtx.CaseContacts, 4)
}

func TestBuilder_BuildWithoutContacts(t *testing.T) {
	f := newBuilderFixture()
	f.caseContacts = nil

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.NotNil(t, reportCtx.CaseContacts)
	assert.Empty(t, reportCtx.CaseContacts)
	f.ctdb.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestBuilder_BuildWithoutSupervisor(t *testing.T) {
	f := newBuilderFixture()
	f.svdb.ExpectedCalls = nil
	f.svdb.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Equal(t, "", reportCtx.Volunteer.SupervisorName)
}

func TestBuilder_BuildSupervisorUserMissing(t *testing.T) {
	f := newBuilderFixture()
	f.udb.ExpectedCalls = nil
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": f.volunteer.ID}).Return(f.volunteer, nil)
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": f.supervisor.ID}).Return(nil, mongo.ErrNoDocuments)

	reportCtx, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Equal(t, "", reportCtx.Volunteer.SupervisorName)
}

func TestBuilder_BuildSupervisorLookupFails(t *testing.T) {
	f := newBuilderFixture()
	f.svdb.ExpectedCalls = nil
	f.svdb.On("FindOne", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())

	assert.EqualError(t, err, "failed to look up supervisor for volunteer "+f.volunteerID()+": connection reset")
	assert.NotErrorIs(t, err, reports.ErrEntityNotFound)
}

func TestBuilder_BuildInvalidCaseID(t *testing.T) {
	f := newBuilderFixture()

	_, err := f.builder.Build(context.Background(), "1234", f.volunteerID())

	assert.ErrorIs(t, err, reports.ErrEntityNotFound)
	f.cdb.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestBuilder_BuildCaseNotFound(t *testing.T) {
	f := newBuilderFixture()
	missing := primitive.NewObjectID()
	f.cdb.On("FindOne", mock.Anything, bson.M{"_id": missing}).Return(nil, mongo.ErrNoDocuments)

	_, err := f.builder.Build(context.Background(), missing.Hex(), f.volunteerID())

	assert.ErrorIs(t, err, reports.ErrEntityNotFound)
}

func TestBuilder_BuildVolunteerNotFound(t *testing.T) {
	f := newBuilderFixture()
	missing := primitive.NewObjectID()
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": missing}).Return(nil, mongo.ErrNoDocuments)

	_, err := f.builder.Build(context.Background(), f.caseID(), missing.Hex())

	assert.ErrorIs(t, err, reports.ErrEntityNotFound)
}

func TestBuilder_BuildVolunteerNotAssigned(t *testing.T) {
	f := newBuilderFixture()
	stranger := &models.User{ID: primitive.NewObjectID(), Details: models.UserDetails{DisplayName: "Not Assigned"}}
	f.udb.On("FindOne", mock.Anything, bson.M{"_id": stranger.ID}).Return(stranger, nil)
	f.adb.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	_, err := f.builder.Build(context.Background(), f.caseID(), stranger.ID.Hex())

	assert.ErrorIs(t, err, reports.ErrEntityNotFound)
	assert.Contains(t, err.Error(), "is not assigned to casa case")
	f.ccdb.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuilder_BuildStoreErrorIsNotNotFound(t *testing.T) {
	f := newBuilderFixture()
	f.cdb.ExpectedCalls = nil
	f.cdb.On("FindOne", mock.Anything, mock.Anything).Return(nil, errors.New("server selection timeout"))

	_, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, reports.ErrEntityNotFound)
}

func TestBuilder_BuildCaseContactsError(t *testing.T) {
	f := newBuilderFixture()
	f.ccdb.ExpectedCalls = nil
	f.ccdb.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("cursor borked"))

	_, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())

	assert.ErrorContains(t, err, "cursor borked")
}

func TestBuilder_BuildIsRepeatable(t *testing.T) {
	f := newBuilderFixture()

	first, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)
	second, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func hasDeadline(within time.Duration) func(context.Context) bool {
	return func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= within
	}
}

func TestBuilder_BuildBoundsLookupsWithQueryTimeout(t *testing.T) {
	f := newBuilderFixture()
	f.builder.QueryTimeout = 5 * time.Second
	f.cdb.ExpectedCalls = nil
	f.cdb.On("FindOne", mock.MatchedBy(hasDeadline(5*time.Second)), bson.M{"_id": f.casaCase.ID}).Return(f.casaCase, nil)
	f.ctdb.ExpectedCalls = nil
	f.ctdb.On("Find", mock.MatchedBy(hasDeadline(5*time.Second)), mock.Anything).Return([]models.ContactType{f.school, f.therapist}, nil)

	_, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)
	f.cdb.AssertExpectations(t)
	f.ctdb.AssertExpectations(t)
}

func TestBuilder_BuildWithoutQueryTimeoutKeepsCallerContext(t *testing.T) {
	f := newBuilderFixture()
	f.cdb.ExpectedCalls = nil
	f.cdb.On("FindOne", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	}), bson.M{"_id": f.casaCase.ID}).Return(f.casaCase, nil)

	_, err := f.builder.Build(context.Background(), f.caseID(), f.volunteerID())
	require.NoError(t, err)
	f.cdb.AssertExpectations(t)
}
