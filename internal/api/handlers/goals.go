package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/validation"
)

// GoalHandler handles financial goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// GoalResponse represents a goal in API responses. Progress is nil when
// the target amount is zero; TimeRemaining is the formatted countdown to
// the target date.
type GoalResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	TargetAmount  float64  `json:"target_amount"`
	CurrentAmount float64  `json:"current_amount"`
	TargetDate    string   `json:"target_date"`
	Priority      string   `json:"priority"`
	Progress      *float64 `json:"progress"`
	TimeRemaining string   `json:"time_remaining"`
}

func toGoalResponse(g model.Goal, now time.Time) GoalResponse {
	resp := GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate.Format(dateLayout),
		Priority:      g.Priority,
		TimeRemaining: service.TimeRemaining(now, g.TargetDate),
	}
	if progress, ok := service.GoalProgress(g.CurrentAmount, g.TargetAmount); ok {
		resp.Progress = &progress
	}
	return resp
}

// Goals handles GET /api/goals
func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals := h.goalService.List()
	now := time.Now()

	response := make([]GoalResponse, len(goals))
	for i, g := range goals {
		response[i] = toGoalResponse(g, now)
	}

	respondJSON(w, http.StatusOK, response)
}

// Goal handles GET /api/goals/{goalId}
func (h *GoalHandler) Goal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.Get(chi.URLParam(r, "goalId"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve goal")
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponse(goal, time.Now()))
}

// CreateGoal handles POST /api/goals
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	// Already validated against the date layout
	targetDate, _ := time.Parse(dateLayout, req.TargetDate)

	created := h.goalService.Create(model.Goal{
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		Priority:      req.Priority,
	})

	respondJSON(w, http.StatusCreated, toGoalResponse(created, time.Now()))
}

// UpdateGoal handles PUT /api/goals/{goalId}
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	update := service.GoalUpdate{
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Priority:      req.Priority,
	}
	if req.TargetDate != nil {
		// Already validated against the date layout
		targetDate, _ := time.Parse(dateLayout, *req.TargetDate)
		update.TargetDate = &targetDate
	}

	updated, err := h.goalService.Update(chi.URLParam(r, "goalId"), update)
	if err != nil {
		respondServiceError(w, err, "Failed to update goal")
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponse(updated, time.Now()))
}

// DeleteGoal handles DELETE /api/goals/{goalId}
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.goalService.Delete(chi.URLParam(r, "goalId")); err != nil {
		respondServiceError(w, err, "Failed to delete goal")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
