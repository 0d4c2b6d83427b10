package databases

// go generate: mockery --name CasaCaseDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/casa-court-report/models"
)

const casaCaseName = "casacases"

// CasaCaseDatabase contains the methods to use with the casa case database
type CasaCaseDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CasaCase, error)
}

type casaCaseDatabase struct {
	db DatabaseHelper
}

// NewCasaCaseDatabase initializes a new instance of casa case database with the provided db connection
func NewCasaCaseDatabase(db DatabaseHelper) CasaCaseDatabase {
	return &casaCaseDatabase{
		db: db,
	}
}

func (d *casaCaseDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CasaCase, error) {
	casaCase := &models.CasaCase{}
	err := d.db.Collection(casaCaseName).FindOne(ctx, filter, opts...).Decode(&casaCase)
	if err != nil {
		return nil, err
	}
	return casaCase, nil
}
