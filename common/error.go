package common

// APIError is the failure envelope returned to callers. Status is only used
// for the HTTP status line; the body always reports success=false.
type APIError struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e APIError) Error() string {
	return e.Message
}

// NewAPIError creates an APIError with status and message
func NewAPIError(status int, message string) APIError {
	return APIError{
		Status:  status,
		Message: message,
	}
}
