package models

// MessageResponse is the generic `{"message": ...}` body used across the API
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}
