package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact mediums a volunteer can pick when logging a case contact
const (
	MediumInPerson  = "in-person"
	MediumTextEmail = "text/email"
	MediumVideo     = "video"
	MediumVoiceOnly = "voice-only"
	MediumLetter    = "letter"
)

// ContactMediums lists the mediums in the order they are offered to volunteers
var ContactMediums = []string{MediumInPerson, MediumTextEmail, MediumVideo, MediumVoiceOnly, MediumLetter}

// CaseContact holds the structure for the casecontacts collection in mongo
type CaseContact struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details CaseContactDetails `json:"caseContact" bson:"caseContact"`
	Version int32              `json:"__v" bson:"__v"`
}

// CaseContactDetails holds the structure for the inner case contact details
type CaseContactDetails struct {
	CasaCaseID string `json:"casaCaseID" bson:"casaCaseID"`
	CreatorID  string `json:"creatorID" bson:"creatorID"`

	OccurredAt      primitive.DateTime `json:"occurredAt" bson:"occurredAt"`
	DurationMinutes int                `json:"durationMinutes" bson:"durationMinutes"`
	ContactTypeIDs  []string           `json:"contactTypeIDs" bson:"contactTypeIDs"`
	MediumType      string             `json:"mediumType" bson:"mediumType"`
	ContactMade     bool               `json:"contactMade" bson:"contactMade"`

	// Mileage
	WantDrivingReimbursement bool `json:"wantDrivingReimbursement" bson:"wantDrivingReimbursement"`
	MilesDriven              int  `json:"milesDriven" bson:"milesDriven"`

	Notes string `json:"notes" bson:"notes"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
