package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexhr/hr-backend-go/internal/domain/onboarding"
	"github.com/nexhr/hr-backend-go/internal/handler/http/response"
)

type OnboardingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	SetCompleted(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type onboardingHandlerImpl struct {
	onboardingService onboarding.OnboardingTaskService
}

func NewOnboardingHandler(onboardingService onboarding.OnboardingTaskService) OnboardingHandler {
	return &onboardingHandlerImpl{
		onboardingService: onboardingService,
	}
}

// Create implements OnboardingHandler.
func (h *onboardingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req onboarding.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.onboardingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding task created successfully", result)
}

// Get implements OnboardingHandler.
func (h *onboardingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.onboardingService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OnboardingHandler.
func (h *onboardingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements OnboardingHandler.
func (h *onboardingHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.onboardingService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetCompleted implements OnboardingHandler.
func (h *onboardingHandlerImpl) SetCompleted(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.onboardingService.SetCompleted(r.Context(), id, req.Completed)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding task updated successfully", result)
}

// Delete implements OnboardingHandler.
func (h *onboardingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.onboardingService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding task deleted successfully", nil)
}
