package models

// ErrorMessageResponse is the body written by config.ErrorStatus for every
// failed request
type ErrorMessageResponse struct {
	Response string `json:"response"`
}
