package databases

// go generate: mockery --name SupervisorVolunteerDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/models"
)

const supervisorVolunteerName = "supervisorvolunteers"

// SupervisorVolunteerDatabase contains the methods to use with the supervisor volunteer database
type SupervisorVolunteerDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.SupervisorVolunteer, error)
}

type supervisorVolunteerDatabase struct {
	db DatabaseHelper
}

// NewSupervisorVolunteerDatabase initializes a new instance of supervisor volunteer database with the provided db connection
func NewSupervisorVolunteerDatabase(db DatabaseHelper) SupervisorVolunteerDatabase {
	return &supervisorVolunteerDatabase{
		db: db,
	}
}

func (d *supervisorVolunteerDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.SupervisorVolunteer, error) {
	supervisorVolunteer := &models.SupervisorVolunteer{}
	err := d.db.Collection(supervisorVolunteerName).FindOne(ctx, filter, opts...).Decode(&supervisorVolunteer)
	if err != nil {
		return nil, err
	}
	return supervisorVolunteer, nil
}
