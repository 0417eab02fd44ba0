package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/signbridge/interview-api/api/handlers"
	"github.com/signbridge/interview-api/databases/mocks"
	"github.com/signbridge/interview-api/models"
)

func TestStatus_StatusCreateHandler(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	db.On("InsertOne", mock.Anything, mock.AnythingOfType("models.StatusCheck")).Return(nil, nil)

	s := handlers.Status{DB: db}

	req, err := http.NewRequest("POST", "/api/status", strings.NewReader(`{"client_name":"web-client"}`))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.StatusCheck
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "web-client", got.ClientName)
	assert.False(t, got.Timestamp.IsZero())
}

func TestStatus_StatusCreateHandlerRequiresClientName(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	s := handlers.Status{DB: db}

	req, err := http.NewRequest("POST", "/api/status", strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestStatus_StatusListHandler(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	db.On("Find", mock.Anything, bson.M{}, mock.Anything).Return([]models.StatusCheck{
		{ID: "status-1", ClientName: "web-client", Timestamp: time.Now().UTC()},
		{ID: "status-2", ClientName: "mobile-client", Timestamp: time.Now().UTC()},
	}, nil)

	s := handlers.Status{DB: db}

	req, err := http.NewRequest("GET", "/api/status", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.StatusCheck
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "status-1", got[0].ID)
}

func TestStatus_StatusListHandlerEmpty(t *testing.T) {
	db := &mocks.StatusCheckDatabase{}
	db.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(nil, nil)

	s := handlers.Status{DB: db}

	req, err := http.NewRequest("GET", "/api/status", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.StatusListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
