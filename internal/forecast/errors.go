package forecast

import "fmt"

// APIError is returned when the forecast API answers with a non-2xx status.
type APIError struct {
	Status int
	// Message is the "message" field of the error body, if there was one.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d (%s)", e.Status, e.Message)
}
