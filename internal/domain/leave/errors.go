package leave

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLeaveType = errors.New("unknown leave type")

	// ErrPolicyViolation is wrapped by every business rule failure below.
	ErrPolicyViolation = errors.New("leave policy violation")

	ErrDateRangeInvalid           = violation("start date is after end date")
	ErrJoiningDateViolation       = violation("leave starts before the employee joining date")
	ErrOverlapDetected            = violation("leave overlaps an existing leave")
	ErrAllDaysNonWorking          = violation("every day in the range is a holiday or weekend")
	ErrGenderMismatch             = violation("leave type is not available for the employee gender")
	ErrMaxOccurrencesExceeded     = violation("maximum number of leaves of this type already taken")
	ErrDeliveryDateBeforeStart    = violation("expected delivery date is before the leave start date")
	ErrInsufficientTenure         = violation("not enough working days served before the leave")
	ErrChildDOBConstraintViolated = violation("leave must start on or after the child's birth and end within 365 days of it")
	ErrInsufficientBalance        = violation("insufficient leave balance")

	// ErrRequiredDateMissing is wrapped with the name of the missing date.
	ErrRequiredDateMissing = violation("required date is missing")
)

func violation(msg string) error {
	return fmt.Errorf("%w: %s", ErrPolicyViolation, msg)
}
