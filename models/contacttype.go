package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactType holds the structure for the contacttypes collection in mongo
type ContactType struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details ContactTypeDetails `json:"contactType" bson:"contactType"`
	Version int32              `json:"__v" bson:"__v"`
}

// ContactTypeDetails holds the structure for the inner contact type details.
// Inactive types can no longer be picked for new contacts but still describe
// the contacts that used them.
type ContactTypeDetails struct {
	Name      string `json:"name" bson:"name"`
	GroupName string `json:"groupName" bson:"groupName"`
	Active    bool   `json:"active" bson:"active"`
}
