package handlers

import (
	"errors"

	"github.com/imamik/nsjourney/internal/forecast"
)

// Describe returns the line printed for a failed command. Errors the user
// can act on become a plain sentence; anything else prints as is.
func Describe(err error) string {
	if errors.Is(err, ErrNoDraft) {
		return "No saved draft found."
	}
	if msg, ok := forecast.InputMessage(err); ok {
		return msg
	}
	return err.Error()
}
