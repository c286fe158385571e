package http

import (
	"net/http"

	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/lms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetLeaveHistory(w http.ResponseWriter, r *http.Request)
	GetLeaveHistoryInRange(w http.ResponseWriter, r *http.Request)
	LogExtraWork(w http.ResponseWriter, r *http.Request)
	GetCompOffBalance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Register implements EmployeeHandler.
func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterEmployeeRequest

	if !response.Decode(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	created, err := h.employeeService.RegisterEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Employee registered successfully", created)
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, employees)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, emp)
}

// GetLeaveHistory implements EmployeeHandler.
func (h *employeeHandlerImpl) GetLeaveHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.employeeService.GetLeaveHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, history)
}

// GetLeaveHistoryInRange implements EmployeeHandler.
func (h *employeeHandlerImpl) GetLeaveHistoryInRange(w http.ResponseWriter, r *http.Request) {
	var req leave.HistoryRangeRequest

	if !response.Decode(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	history, err := h.employeeService.GetLeaveHistoryInRange(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, history)
}

// LogExtraWork implements EmployeeHandler.
func (h *employeeHandlerImpl) LogExtraWork(w http.ResponseWriter, r *http.Request) {
	var req extrawork.LogExtraWorkRequest

	if !response.Decode(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	logged, err := h.employeeService.LogExtraWork(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Extra work logged successfully", logged)
}

// GetCompOffBalance implements EmployeeHandler.
func (h *employeeHandlerImpl) GetCompOffBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.employeeService.GetCompOffBalance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, balance)
}
