package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CasaCase holds the structure for the casacases collection in mongo
type CasaCase struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details CasaCaseDetails    `json:"casaCase" bson:"casaCase"`
	Version int32              `json:"__v" bson:"__v"`
}

// CasaCaseDetails holds the structure for the inner casa case details
type CasaCaseDetails struct {
	CaseNumber          string `json:"caseNumber" bson:"caseNumber"`
	TransitionAgedYouth bool   `json:"transitionAgedYouth" bson:"transitionAgedYouth"`
	CasaOrgID           string `json:"casaOrgID" bson:"casaOrgID"`

	// Scheduling. CourtDate is the next hearing, it may already have passed if
	// nobody has rolled it into PastCourtDates yet.
	CourtDate      *primitive.DateTime `json:"courtDate,omitempty" bson:"courtDate,omitempty"`
	HearingTypeID  string              `json:"hearingTypeID,omitempty" bson:"hearingTypeID,omitempty"`
	PastCourtDates []PastCourtDate     `json:"pastCourtDates" bson:"pastCourtDates"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// PastCourtDate records a hearing that has already been held for a case
type PastCourtDate struct {
	Date          primitive.DateTime `json:"date" bson:"date"`
	HearingTypeID string             `json:"hearingTypeID,omitempty" bson:"hearingTypeID,omitempty"`
}

// CourtDates returns every recorded court date for the case, past and upcoming,
// in the order they were stored.
func (d CasaCaseDetails) CourtDates() []primitive.DateTime {
	dates := make([]primitive.DateTime, 0, len(d.PastCourtDates)+1)
	for _, p := range d.PastCourtDates {
		dates = append(dates, p.Date)
	}
	if d.CourtDate != nil {
		dates = append(dates, *d.CourtDate)
	}
	return dates
}
