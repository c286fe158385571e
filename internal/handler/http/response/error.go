package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/validator"
	"github.com/go-chi/httplog/v3"
)

type rule struct {
	err  error
	name string
}

// Checked in order; the first match names the rule in error.details.rule.
var leaveRules = []rule{
	{leave.ErrDateRangeInvalid, "DATE_RANGE_INVALID"},
	{leave.ErrJoiningDateViolation, "JOINING_DATE_VIOLATION"},
	{leave.ErrOverlapDetected, "OVERLAP_DETECTED"},
	{leave.ErrAllDaysNonWorking, "ALL_DAYS_NON_WORKING"},
	{leave.ErrGenderMismatch, "GENDER_MISMATCH"},
	{leave.ErrMaxOccurrencesExceeded, "MAX_OCCURRENCES_EXCEEDED"},
	{leave.ErrDeliveryDateBeforeStart, "DELIVERY_DATE_BEFORE_START"},
	{leave.ErrInsufficientTenure, "INSUFFICIENT_TENURE"},
	{leave.ErrChildDOBConstraintViolated, "CHILD_DOB_CONSTRAINT_VIOLATED"},
	{leave.ErrInsufficientBalance, "INSUFFICIENT_BALANCE"},
	{leave.ErrRequiredDateMissing, "REQUIRED_DATE_MISSING"},
}

var extraWorkReasons = []rule{
	{extrawork.ErrNotSingleDay, "NOT_SINGLE_DAY"},
	{extrawork.ErrInFuture, "IN_FUTURE"},
	{extrawork.ErrWorkingDay, "WORKING_DAY"},
	{extrawork.ErrTooShort, "TOO_SHORT"},
	{extrawork.ErrBeforeJoiningDate, "BEFORE_JOINING_DATE"},
	{extrawork.ErrAlreadyLogged, "ALREADY_LOGGED"},
}

func ruleDetails(err error, rules []rule) map[string]string {
	for _, r := range rules {
		if errors.Is(err, r.err) {
			return map[string]string{"rule": r.name}
		}
	}
	return nil
}

// HandleError maps domain errors to HTTP responses. The error is attached to
// the request log line written by the httplog middleware.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	httplog.SetError(r.Context(), err)

	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidGender):
		ValidationError(w, map[string]string{"gender": err.Error()})

	// Malformed dates
	case errors.Is(err, calendar.ErrInvalidDate), errors.Is(err, calendar.ErrInvalidDateTime):
		Fail(w, http.StatusBadRequest, "PARSE_FAILURE", err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrUnknownLeaveType):
		Fail(w, http.StatusBadRequest, "UNKNOWN_LEAVE_TYPE", err.Error(), nil)
	case errors.Is(err, leave.ErrOverlapDetected):
		Fail(w, http.StatusConflict, "POLICY_VIOLATION", err.Error(), ruleDetails(err, leaveRules))
	case errors.Is(err, leave.ErrPolicyViolation):
		Fail(w, http.StatusUnprocessableEntity, "POLICY_VIOLATION", err.Error(), ruleDetails(err, leaveRules))

	// Extra work errors
	case errors.Is(err, extrawork.ErrIneligible):
		Fail(w, http.StatusUnprocessableEntity, "EXTRA_WORK_INELIGIBLE", err.Error(), ruleDetails(err, extraWorkReasons))

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
