package extrawork

import (
	"errors"
	"fmt"
)

var (
	// ErrIneligible is wrapped by every reason a day cannot be logged.
	ErrIneligible = errors.New("extra work not eligible")

	ErrNotSingleDay      = ineligible("work must start and end on the same day")
	ErrInFuture          = ineligible("work cannot be logged ahead of time")
	ErrWorkingDay        = ineligible("work must fall on a holiday or weekend")
	ErrTooShort          = ineligible("work must last at least 8 hours")
	ErrBeforeJoiningDate = ineligible("work cannot precede the employee joining date")
	ErrAlreadyLogged     = ineligible("extra work already logged for this date")
)

func ineligible(msg string) error {
	return fmt.Errorf("%w: %s", ErrIneligible, msg)
}
