package databases

// go generate: mockery --name SessionDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/signbridge/interview-api/models"
)

const sessionName = "interview_sessions"

// SessionDatabase contains the methods to use with the interview session database
type SessionDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.InterviewSession, error)
	InsertOne(ctx context.Context, session models.InterviewSession) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type sessionDatabase struct {
	db DatabaseHelper
}

// NewSessionDatabase initializes a new instance of session database with the provided db connection
func NewSessionDatabase(db DatabaseHelper) SessionDatabase {
	return &sessionDatabase{
		db: db,
	}
}

func (s *sessionDatabase) FindOne(ctx context.Context, filter interface{}) (*models.InterviewSession, error) {
	session := &models.InterviewSession{}
	err := s.db.Collection(sessionName).FindOne(ctx, filter).Decode(session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionDatabase) InsertOne(ctx context.Context, session models.InterviewSession) (InsertOneResultHelper, error) {
	return s.db.Collection(sessionName).InsertOne(ctx, session)
}

func (s *sessionDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return s.db.Collection(sessionName).UpdateOne(ctx, filter, update, opts...)
}
