package schedule

import "github.com/skedcli/sked/internal/apperr"

var (
	ErrEventConflict = &apperr.Error{
		Message: "time conflict detected: %q runs from %s to %s",
	}

	ErrEventNotFound = &apperr.Error{
		Message: "no event found starting at %s",
	}
)
