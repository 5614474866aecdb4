package errors

// ErrorInfo carries the machine-readable side of a failed response.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOTIFICATION_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description (4xx only)
}

// Response is the envelope every HTTP response is rendered into.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
