package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SupervisorVolunteer holds the structure for the supervisorvolunteers collection in mongo
type SupervisorVolunteer struct {
	ID      primitive.ObjectID         `json:"_id" bson:"_id"`
	Details SupervisorVolunteerDetails `json:"supervisorVolunteer" bson:"supervisorVolunteer"`
}

// SupervisorVolunteerDetails links a volunteer to the supervisor overseeing them
type SupervisorVolunteerDetails struct {
	SupervisorID string `json:"supervisorID" bson:"supervisorID"`
	VolunteerID  string `json:"volunteerID" bson:"volunteerID"`
	Active       bool   `json:"active" bson:"active"`
}
