package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/employee"
	"github.com/nexhr/hr-backend-go/internal/handler/http/response"
)

// defaultLowPerformanceThreshold is on the stored 0-100 score scale.
const defaultLowPerformanceThreshold = 70

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByManager(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	ListLowPerformance(w http.ResponseWriter, r *http.Request)
	ListByTenure(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByManager implements EmployeeHandler.
func (h *employeeHandlerImpl) ListByManager(w http.ResponseWriter, r *http.Request) {
	managerID := chi.URLParam(r, "id")

	result, err := h.employeeService.ListByManager(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDepartment implements EmployeeHandler.
func (h *employeeHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "department")

	result, err := h.employeeService.ListByDepartment(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListActive implements EmployeeHandler.
func (h *employeeHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLowPerformance implements EmployeeHandler.
func (h *employeeHandlerImpl) ListLowPerformance(w http.ResponseWriter, r *http.Request) {
	threshold := defaultLowPerformanceThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			response.BadRequest(w, "Threshold must be an integer between 0 and 100", nil)
			return
		}
		threshold = parsed
	}

	result, err := h.employeeService.ListLowPerformance(r.Context(), threshold)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByTenure implements EmployeeHandler.
func (h *employeeHandlerImpl) ListByTenure(w http.ResponseWriter, r *http.Request) {
	years, err := strconv.Atoi(chi.URLParam(r, "years"))
	if err != nil || years < 0 {
		response.BadRequest(w, "Years must be a non-negative integer", nil)
		return
	}

	result, err := h.employeeService.ListByTenure(r.Context(), years)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
