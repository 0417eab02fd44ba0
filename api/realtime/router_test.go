package realtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/databases/mocks"
	"github.com/signbridge/interview-api/models"
)

func strPtr(s string) *string { return &s }

func TestRouterParticipantsBothSlots(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, bson.M{"session_id": "sess-1"}).Return(&models.InterviewSession{
		SessionID:   "sess-1",
		CandidateID: strPtr("cand-1"),
		HRID:        strPtr("hr-1"),
		Status:      models.SessionStatusActive,
	}, nil)

	router := &realtime.Router{DB: db}
	got := router.Participants(context.Background(), "sess-1")

	assert.Equal(t, []string{"cand-1", "hr-1"}, got)
}

func TestRouterParticipantsSingleSlot(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.InterviewSession{
		SessionID:   "sess-1",
		CandidateID: strPtr("cand-1"),
		Status:      models.SessionStatusWaiting,
	}, nil)

	router := &realtime.Router{DB: db}

	assert.Equal(t, []string{"cand-1"}, router.Participants(context.Background(), "sess-1"))
}

func TestRouterParticipantsEmptySession(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.InterviewSession{
		SessionID: "sess-1",
		Status:    models.SessionStatusWaiting,
	}, nil)

	router := &realtime.Router{DB: db}

	assert.Empty(t, router.Participants(context.Background(), "sess-1"))
}

func TestRouterParticipantsVanishedSession(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	router := &realtime.Router{DB: db}

	assert.Empty(t, router.Participants(context.Background(), "no-such-session"))
}
