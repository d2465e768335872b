package engine

import "github.com/google/uuid"

// newRunID tags every log line of one batch run.
func newRunID() string {
	return uuid.NewString()
}
