package scheduler

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/databases/mocks"
)

func TestNewDefaultRetention(t *testing.T) {
	os.Unsetenv("STATUS_RETENTION_DAYS")
	s := New(&mocks.StatusCheckDatabase{}, realtime.NewHub())
	assert.Equal(t, defaultRetentionDays, s.retentionDays)
}

func TestNewRetentionFromEnv(t *testing.T) {
	os.Setenv("STATUS_RETENTION_DAYS", "7")
	defer os.Unsetenv("STATUS_RETENTION_DAYS")

	s := New(&mocks.StatusCheckDatabase{}, realtime.NewHub())
	assert.Equal(t, 7, s.retentionDays)
}

func TestNewIgnoresInvalidRetention(t *testing.T) {
	os.Setenv("STATUS_RETENTION_DAYS", "-3")
	defer os.Unsetenv("STATUS_RETENTION_DAYS")

	s := New(&mocks.StatusCheckDatabase{}, realtime.NewHub())
	assert.Equal(t, defaultRetentionDays, s.retentionDays)
}

func TestSweepStatusChecks(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	db.On("DeleteMany", mock.Anything, mock.MatchedBy(func(filter bson.M) bool {
		window, ok := filter["timestamp"].(bson.M)
		if !ok {
			return false
		}
		cutoff, ok := window["$lt"].(time.Time)
		// cutoff sits retentionDays in the past, give or take scheduling slack
		return ok && time.Since(cutoff) > 29*24*time.Hour
	})).Return(int64(3), nil)

	s := New(db, realtime.NewHub())
	s.sweepStatusChecks()

	db.AssertExpectations(t)
}

func TestSweepStatusChecksSurvivesStoreError(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	db.On("DeleteMany", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	s := New(db, realtime.NewHub())
	assert.NotPanics(t, s.sweepStatusChecks)
}
