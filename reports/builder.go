package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/databases"
	"github.com/linesmerrill/casa-court-report/decorators"
	"github.com/linesmerrill/casa-court-report/models"
)

// ContextBuilder assembles the context for a case/volunteer pair
type ContextBuilder interface {
	Build(ctx context.Context, caseID, volunteerID string) (*Context, error)
}

// Builder loads a case, its volunteer and the contacts since the last court
// date from mongo. It keeps no state between calls.
type Builder struct {
	CDB  databases.CasaCaseDatabase
	UDB  databases.UserDatabase
	ADB  databases.CaseAssignmentDatabase
	SVDB databases.SupervisorVolunteerDatabase
	CCDB databases.CaseContactDatabase
	CTDB databases.ContactTypeDatabase

	// Now defaults to time.Now
	Now func() time.Time
	// Location dates are printed in, defaults to UTC
	Location *time.Location
	// QueryTimeout bounds all store lookups for one Build. Zero leaves ctx alone.
	QueryTimeout time.Duration
}

// Build returns the report context for the volunteer's report on the case. It
// fails with ErrEntityNotFound when either entity is missing or the volunteer
// is not actively assigned to the case.
func (b Builder) Build(ctx context.Context, caseID, volunteerID string) (*Context, error) {
	now := b.now()
	if b.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.QueryTimeout)
		defer cancel()
	}

	casaCase, err := b.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	volunteer, err := b.findUser(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("volunteer %s: %w", volunteerID, err)
	}
	assignment, err := b.findAssignment(ctx, caseID, volunteerID)
	if err != nil {
		return nil, err
	}
	supervisor, err := b.findSupervisor(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	contacts, err := b.CCDB.Find(ctx,
		bson.M{"caseContact.casaCaseID": caseID},
		options.Find().SetSort(bson.D{{Key: "caseContact.occurredAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to load case contacts for case %s: %w", caseID, err)
	}

	var courtDates []time.Time
	for _, d := range casaCase.Details.CourtDates() {
		courtDates = append(courtDates, d.Time())
	}
	window := ContactWindow(courtDates, contacts, now)

	contactTypes, err := b.findContactTypes(ctx, window)
	if err != nil {
		return nil, err
	}

	summaries := make([]CaseContactSummary, 0, len(window))
	for _, c := range window {
		summaries = append(summaries, b.summarize(c, contactTypes))
	}

	supervisorName := ""
	if supervisor != nil {
		supervisorName = supervisor.Details.DisplayName
	}

	return &Context{
		CreatedDate: now.In(b.location()).Format(decorators.LongDateLayout),
		CasaCase: CasaCaseSummary{
			ID:                  casaCase.ID.Hex(),
			CaseNumber:          casaCase.Details.CaseNumber,
			CourtDate:           b.upcomingCourtDate(casaCase, now),
			TransitionAgedYouth: casaCase.Details.TransitionAgedYouth,
		},
		CaseContacts: summaries,
		Volunteer: VolunteerSummary{
			ID:             volunteer.ID.Hex(),
			Name:           volunteer.Details.DisplayName,
			SupervisorName: supervisorName,
			AssignmentDate: b.formatDate(assignment.Details.CreatedAt),
		},
	}, nil
}

func (b Builder) findCase(ctx context.Context, caseID string) (*models.CasaCase, error) {
	id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, fmt.Errorf("casa case %q: %w", caseID, ErrEntityNotFound)
	}
	casaCase, err := b.CDB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("casa case %s: %w", caseID, notFound(err))
	}
	return casaCase, nil
}

func (b Builder) findUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, ErrEntityNotFound)
	}
	user, err := b.UDB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (b Builder) findAssignment(ctx context.Context, caseID, volunteerID string) (*models.CaseAssignment, error) {
	assignment, err := b.ADB.FindOne(ctx, bson.M{
		"caseAssignment.casaCaseID":  caseID,
		"caseAssignment.volunteerID": volunteerID,
		"caseAssignment.active":      true,
	})
	if err != nil {
		return nil, fmt.Errorf("volunteer %s is not assigned to casa case %s: %w", volunteerID, caseID, notFound(err))
	}
	return assignment, nil
}

// findSupervisor returns nil when the volunteer has no active supervisor or
// the supervisor's user record is gone.
func (b Builder) findSupervisor(ctx context.Context, volunteerID string) (*models.User, error) {
	link, err := b.SVDB.FindOne(ctx, bson.M{
		"supervisorVolunteer.volunteerID": volunteerID,
		"supervisorVolunteer.active":      true,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up supervisor for volunteer %s: %w", volunteerID, err)
	}

	supervisor, err := b.findUser(ctx, link.Details.SupervisorID)
	if errors.Is(err, ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load supervisor %s: %w", link.Details.SupervisorID, err)
	}
	return supervisor, nil
}

// findContactTypes loads every contact type referenced by the contacts, keyed by hex id
func (b Builder) findContactTypes(ctx context.Context, contacts []models.CaseContact) (map[string]models.ContactType, error) {
	seen := map[string]bool{}
	var ids []primitive.ObjectID
	for _, c := range contacts {
		for _, hex := range c.Details.ContactTypeIDs {
			if seen[hex] {
				continue
			}
			seen[hex] = true
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}

	byID := make(map[string]models.ContactType, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	contactTypes, err := b.CTDB.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to load contact types: %w", err)
	}
	for _, ct := range contactTypes {
		byID[ct.ID.Hex()] = ct
	}
	return byID, nil
}

func (b Builder) summarize(c models.CaseContact, contactTypes map[string]models.ContactType) CaseContactSummary {
	var types []models.ContactType
	for _, id := range c.Details.ContactTypeIDs {
		if ct, ok := contactTypes[id]; ok {
			types = append(types, ct)
		}
	}

	d := decorators.Decorate(c, types)
	d.Location = b.location()

	return CaseContactSummary{
		OccurredAt:               d.OccurredAt(),
		DurationMinutes:          d.DurationMinutes(),
		ContactMade:              d.ContactMade(),
		ContactTypes:             d.ContactTypesText(),
		MediumType:               c.Details.MediumType,
		MediumIcon:               d.MediumIcon(),
		Subheading:               d.Subheading(),
		MilesDriven:              c.Details.MilesDriven,
		WantDrivingReimbursement: c.Details.WantDrivingReimbursement,
		Notes:                    c.Details.Notes,
	}
}

// upcomingCourtDate is empty once the scheduled court date has passed
func (b Builder) upcomingCourtDate(casaCase *models.CasaCase, now time.Time) string {
	d := casaCase.Details.CourtDate
	if d == nil || d.Time().Before(now) {
		return ""
	}
	return b.formatDate(*d)
}

func (b Builder) formatDate(d primitive.DateTime) string {
	if d == 0 {
		return ""
	}
	return d.Time().In(b.location()).Format(decorators.LongDateLayout)
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b Builder) location() *time.Location {
	if b.Location != nil {
		return b.Location
	}
	return time.UTC
}

// notFound maps a missing mongo document to ErrEntityNotFound and leaves
// every other store error alone.
func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrEntityNotFound
	}
	return err
}
