package models

import "time"

// Message holds the structure for a single message embedded in an interview
// session. MessageType is an opaque client-side rendering tag such as
// "sign_to_text", "text_to_speech" or "text_to_sign".
type Message struct {
	SessionID   string    `json:"session_id" bson:"session_id" validate:"required"`
	SenderID    string    `json:"sender_id" bson:"sender_id" validate:"required"`
	SenderRole  string    `json:"sender_role" bson:"sender_role" validate:"required"`
	MessageType string    `json:"message_type" bson:"message_type" validate:"required"`
	Content     string    `json:"content" bson:"content"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// MessageAckResponse acknowledges a persisted message
type MessageAckResponse struct {
	Message string `json:"message"`
}
