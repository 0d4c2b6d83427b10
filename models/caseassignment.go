package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CaseAssignment holds the structure for the caseassignments collection in mongo
type CaseAssignment struct {
	ID      primitive.ObjectID    `json:"_id" bson:"_id"`
	Details CaseAssignmentDetails `json:"caseAssignment" bson:"caseAssignment"`
}

// CaseAssignmentDetails links a volunteer to a casa case
type CaseAssignmentDetails struct {
	CasaCaseID  string             `json:"casaCaseID" bson:"casaCaseID"`
	VolunteerID string             `json:"volunteerID" bson:"volunteerID"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
