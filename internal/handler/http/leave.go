package http

import (
	"net/http"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// employeeIDParam reads the employee id from either route shape.
func employeeIDParam(r *http.Request) string {
	if id := chi.URLParam(r, "employeeID"); id != "" {
		return id
	}
	return chi.URLParam(r, "id")
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if !response.Decode(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	applied, err := l.leaveService.ApplyLeave(r.Context(), employeeIDParam(r), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Leave applied successfully", applied)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := l.leaveService.GetLeaveBalance(r.Context(), employeeIDParam(r))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, balance)
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, l.leaveService.ListLeaveTypes(r.Context()))
}
