package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/signbridge/interview-api/config"
	"github.com/signbridge/interview-api/databases"
	"github.com/signbridge/interview-api/models"
)

// statusListLimit caps how many status checks a single list call returns
const statusListLimit = 1000

// Status exported for testing purposes
type Status struct {
	DB databases.StatusCheckDatabase
}

// StatusCreateHandler records a status check from a client
func (s Status) StatusCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var body models.StatusCheckCreate
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		config.ErrorStatus("failed to validate request", http.StatusBadRequest, w, err)
		return
	}

	statusCheck := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: body.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	_, err = s.DB.InsertOne(r.Context(), statusCheck)
	if err != nil {
		config.ErrorStatus("failed to insert status check", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(statusCheck)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// StatusListHandler returns the recorded status checks, newest page first
// when limit/page query params are given
func (s Status) StatusListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	limit := statusListLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= statusListLimit {
		limit = v
	}
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	dbResp, err := s.DB.Find(r.Context(), bson.M{}, databases.NewPaginate(limit, page).GetPaginatedOpts())
	if err != nil {
		config.ErrorStatus("failed to get status checks", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.StatusCheck{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
