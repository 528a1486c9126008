package api

import "encoding/json"

// Envelope is the uniform shape every backend reply follows:
// {"data": ...} on success, {"message": "..."} on failure.
// Data stays raw so each call site can decode its own payload type
// and a missing field is distinguishable from an empty one.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// ErrorResponse is the body the backend sends on non-2xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Meta is the pagination metadata block of paginated listings.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Links carries the pagination cursors of paginated listings.
// Next is null on the last page.
type Links struct {
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}
