package databases

// go generate: mockery --name CaseAssignmentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/models"
)

const caseAssignmentName = "caseassignments"

// CaseAssignmentDatabase contains the methods to use with the case assignment database
type CaseAssignmentDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CaseAssignment, error)
}

type caseAssignmentDatabase struct {
	db DatabaseHelper
}

// NewCaseAssignmentDatabase initializes a new instance of case assignment database with the provided db connection
func NewCaseAssignmentDatabase(db DatabaseHelper) CaseAssignmentDatabase {
	return &caseAssignmentDatabase{
		db: db,
	}
}

func (d *caseAssignmentDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CaseAssignment, error) {
	assignment := &models.CaseAssignment{}
	err := d.db.Collection(caseAssignmentName).FindOne(ctx, filter, opts...).Decode(&assignment)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}
