package databases

// go generate: mockery --name StatusCheckDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/signbridge/interview-api/models"
)

const statusCheckName = "status_checks"

// StatusCheckDatabase contains the methods to use with the status check database
type StatusCheckDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.StatusCheck, error)
	InsertOne(ctx context.Context, statusCheck models.StatusCheck) (InsertOneResultHelper, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}

type statusCheckDatabase struct {
	db DatabaseHelper
}

// NewStatusCheckDatabase initializes a new instance of status check database with the provided db connection
func NewStatusCheckDatabase(db DatabaseHelper) StatusCheckDatabase {
	return &statusCheckDatabase{
		db: db,
	}
}

func (s *statusCheckDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.StatusCheck, error) {
	var statusChecks []models.StatusCheck
	curr, err := s.db.Collection(statusCheckName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = curr.Decode(&statusChecks)
	if err != nil {
		return nil, err
	}
	return statusChecks, nil
}

func (s *statusCheckDatabase) InsertOne(ctx context.Context, statusCheck models.StatusCheck) (InsertOneResultHelper, error) {
	return s.db.Collection(statusCheckName).InsertOne(ctx, statusCheck)
}

func (s *statusCheckDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return s.db.Collection(statusCheckName).DeleteMany(ctx, filter)
}
