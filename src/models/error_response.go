package models

// ErrorResponse is the standard error payload for every endpoint
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // error detail
}
