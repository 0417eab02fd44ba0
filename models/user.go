package models

import "time"

// Roles accepted on user creation and session join. The interviewer side of
// a session is tagged "hr" on the wire.
const (
	RoleCandidate = "candidate"
	RoleHR        = "hr"
)

// User holds the structure for the users collection in mongo
type User struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role" bson:"role"`
	SessionID *string   `json:"session_id" bson:"session_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserCreate holds the structure for the create user request body
type UserCreate struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,oneof=candidate hr"`
}
