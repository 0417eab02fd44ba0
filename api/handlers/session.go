package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/config"
	"github.com/signbridge/interview-api/databases"
	"github.com/signbridge/interview-api/models"
)

// defaultSignLanguage is applied when a session is created without one
const defaultSignLanguage = "ASL"

// Session exported for testing purposes
type Session struct {
	DB         databases.SessionDatabase
	UDB        databases.UserDatabase
	Dispatcher *realtime.Dispatcher
}

// SessionCreateHandler creates an interview session in the waiting state
func (s Session) SessionCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var body models.SessionCreate
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil && err != io.EOF {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if body.SignLanguage == "" {
		body.SignLanguage = defaultSignLanguage
	}

	session := models.InterviewSession{
		SessionID:    uuid.NewString(),
		Status:       models.SessionStatusWaiting,
		SignLanguage: body.SignLanguage,
		CreatedAt:    time.Now().UTC(),
		Messages:     []models.Message{},
	}
	_, err = s.DB.InsertOne(r.Context(), session)
	if err != nil {
		config.ErrorStatus("failed to insert session", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(session)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SessionHandler returns a session given a sessionID
func (s Session) SessionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sessionID := mux.Vars(r)["session_id"]

	zap.S().Debugf("session_id: %v", sessionID)

	dbResp, err := s.DB.FindOne(r.Context(), bson.M{"session_id": sessionID})
	if err != nil {
		config.ErrorStatus("failed to get session by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// JoinSessionHandler places a user into one of the session's participant
// slots. A join overwrites whoever held the slot before, and the session
// goes active once both slots are occupied.
func (s Session) JoinSessionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sessionID := mux.Vars(r)["session_id"]
	userID := r.URL.Query().Get("user_id")
	role := r.URL.Query().Get("role")

	if userID == "" || role == "" {
		config.ErrorStatus("user_id and role are required", http.StatusBadRequest, w, fmt.Errorf("missing query parameters"))
		return
	}

	session, err := s.DB.FindOne(r.Context(), bson.M{"session_id": sessionID})
	if err != nil {
		config.ErrorStatus("failed to get session by ID", http.StatusNotFound, w, err)
		return
	}

	update := bson.M{}
	switch role {
	case models.RoleCandidate:
		update["candidate_id"] = userID
		if lo.FromPtr(session.HRID) != "" {
			update["status"] = models.SessionStatusActive
		}
	case models.RoleHR:
		update["hr_id"] = userID
		if lo.FromPtr(session.CandidateID) != "" {
			update["status"] = models.SessionStatusActive
		}
	}

	if len(update) > 0 {
		_, err = s.DB.UpdateOne(r.Context(), bson.M{"session_id": sessionID}, bson.M{"$set": update})
		if err != nil {
			config.ErrorStatus("failed to update session", http.StatusInternalServerError, w, err)
			return
		}
	}

	// a user is only ever "in" one session, the latest join wins
	_, err = s.UDB.UpdateOne(r.Context(), bson.M{"user_id": userID}, bson.M{"$set": bson.M{"session_id": sessionID}})
	if err != nil {
		config.ErrorStatus("failed to update user session", http.StatusInternalServerError, w, err)
		return
	}

	status := models.SessionStatusWaiting
	if v, ok := update["status"].(string); ok {
		status = v
	}
	b, err := json.Marshal(models.JoinSessionResponse{
		Message: "Joined session successfully",
		Status:  status,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateMessageHandler appends a message to the session's history and pushes
// it live to the session's participants. The push is best effort; the
// request succeeds even when nobody is connected.
func (s Session) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sessionID := mux.Vars(r)["session_id"]

	var message models.Message
	err := json.NewDecoder(r.Body).Decode(&message)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(message); err != nil {
		config.ErrorStatus("failed to validate request", http.StatusBadRequest, w, err)
		return
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	_, err = s.DB.UpdateOne(r.Context(), bson.M{"session_id": sessionID}, bson.M{"$push": bson.M{"messages": message}})
	if err != nil {
		config.ErrorStatus("failed to append message", http.StatusInternalServerError, w, err)
		return
	}

	s.Dispatcher.SendToSession(r.Context(), sessionID, message)

	b, err := json.Marshal(models.MessageAckResponse{Message: "Message sent successfully"})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
