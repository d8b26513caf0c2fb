package models

// ErrorMessageResponse is the body written for every failed request
type ErrorMessageResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// MessageResponse is the body for successful requests that only confirm an action
type MessageResponse struct {
	Message string `json:"message"`
}
