package dto

// ErrorResponse is the body returned for 4xx/5xx responses.
// Status carries the HTTP status code as a string.
type ErrorResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Path      string   `json:"path"`
	Timestamp DateTime `json:"timestamp"`
}
