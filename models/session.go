package models

import "time"

// Session statuses. Completed is reserved for external closure flows and is
// never set by this service.
const (
	SessionStatusWaiting   = "waiting"
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// InterviewSession holds the structure for the interview_sessions collection in mongo.
// Messages are embedded and append-only, first appended first in the slice.
type InterviewSession struct {
	SessionID    string    `json:"session_id" bson:"session_id"`
	CandidateID  *string   `json:"candidate_id" bson:"candidate_id"`
	HRID         *string   `json:"hr_id" bson:"hr_id"`
	Status       string    `json:"status" bson:"status"`
	SignLanguage string    `json:"sign_language" bson:"sign_language"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	Messages     []Message `json:"messages" bson:"messages"`
}

// SessionCreate holds the structure for the create session request body
type SessionCreate struct {
	SignLanguage string `json:"sign_language"`
}

// JoinSessionResponse is returned by the join endpoint with the status the
// session ended up in after the join was applied.
type JoinSessionResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
