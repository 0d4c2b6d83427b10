package databases

// go generate: mockery --name CaseContactDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/models"
)

const caseContactName = "casecontacts"

// CaseContactDatabase contains the methods to use with the case contact database
type CaseContactDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CaseContact, error)
}

type caseContactDatabase struct {
	db DatabaseHelper
}

// NewCaseContactDatabase initializes a new instance of case contact database with the provided db connection
func NewCaseContactDatabase(db DatabaseHelper) CaseContactDatabase {
	return &caseContactDatabase{
		db: db,
	}
}

func (d *caseContactDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CaseContact, error) {
	caseContacts := []models.CaseContact{}
	curr, err := d.db.Collection(caseContactName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &caseContacts)
	if err != nil {
		return nil, err
	}
	return caseContacts, nil
}
