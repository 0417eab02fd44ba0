package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/signbridge/interview-api/databases"
	"github.com/signbridge/interview-api/databases/mocks"
	"github.com/signbridge/interview-api/models"
)

func TestSessionDatabaseFindOneDecodes(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	single := &mocks.SingleResultHelper{}

	single.On("Decode", mock.AnythingOfType("*models.InterviewSession")).Return(nil).Run(func(args mock.Arguments) {
		session := args.Get(0).(*models.InterviewSession)
		session.SessionID = "sess-1"
		session.Status = models.SessionStatusWaiting
	})
	coll.On("FindOne", mock.Anything, bson.M{"session_id": "sess-1"}).Return(single)
	dbHelper.On("Collection", "interview_sessions").Return(coll)

	db := databases.NewSessionDatabase(dbHelper)
	got, err := db.FindOne(context.Background(), bson.M{"session_id": "sess-1"})

	assert.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, models.SessionStatusWaiting, got.Status)
}

func TestSessionDatabaseFindOnePropagatesError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	single := &mocks.SingleResultHelper{}

	single.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	coll.On("FindOne", mock.Anything, mock.Anything).Return(single)
	dbHelper.On("Collection", "interview_sessions").Return(coll)

	db := databases.NewSessionDatabase(dbHelper)
	got, err := db.FindOne(context.Background(), bson.M{"session_id": "missing"})

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestSessionDatabaseUpdateOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}

	coll.On("UpdateOne", mock.Anything, bson.M{"session_id": "sess-1"}, mock.Anything).Return(nil, nil)
	dbHelper.On("Collection", "interview_sessions").Return(coll)

	db := databases.NewSessionDatabase(dbHelper)
	_, err := db.UpdateOne(context.Background(), bson.M{"session_id": "sess-1"}, bson.M{"$set": bson.M{"status": models.SessionStatusActive}})

	assert.NoError(t, err)
	coll.AssertExpectations(t)
}
