package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles
const (
	RoleVolunteer  = "volunteer"
	RoleSupervisor = "supervisor"
	RoleCasaAdmin  = "casa_admin"
)

// User holds the structure for the users collection in mongo. Volunteers and
// their supervisors both live here.
type User struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details UserDetails        `json:"user" bson:"user"`
	Version int32              `json:"__v" bson:"__v"`
}

// UserDetails holds the structure for the inner user structure as defined in the user collection in mongo
type UserDetails struct {
	DisplayName string             `json:"displayName" bson:"displayName"`
	Email       string             `json:"email" bson:"email"`
	Role        string             `json:"role" bson:"role"`
	CasaOrgID   string             `json:"casaOrgID" bson:"casaOrgID"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
