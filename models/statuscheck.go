package models

import "time"

// StatusCheck holds the structure for the status_checks collection in mongo
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// StatusCheckCreate holds the structure for the create status check request body
type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}
