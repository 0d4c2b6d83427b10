package databases

// go generate: mockery --name ContactTypeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/models"
)

const contactTypeName = "contacttypes"

// ContactTypeDatabase contains the methods to use with the contact type database
type ContactTypeDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ContactType, error)
}

type contactTypeDatabase struct {
	db DatabaseHelper
}

// NewContactTypeDatabase initializes a new instance of contact type database with the provided db connection
func NewContactTypeDatabase(db DatabaseHelper) ContactTypeDatabase {
	return &contactTypeDatabase{
		db: db,
	}
}

func (d *contactTypeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ContactType, error) {
	contactTypes := []models.ContactType{}
	curr, err := d.db.Collection(contactTypeName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &contactTypes)
	if err != nil {
		return nil, err
	}
	return contactTypes, nil
}
