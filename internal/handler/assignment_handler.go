package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

func parseTime(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: field + " must be an RFC3339 timestamp",
		}
	}
	return parsed, nil
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	start, err := parseTime("start", req.Start)
	if err != nil {
		h.handleError(w, err)
		return
	}
	end, err := parseTime("end", req.End)
	if err != nil {
		h.handleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateAssignment(
		r.Context(), req.ResourceID, req.TeamID, start, end, req.Role, req.IsTeamLeader,
	)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateAssignmentResponse{
		Assignment: domainAssignmentToHTTP(created),
	})
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	var patch domain.AssignmentUpdate
	if req.Start != nil {
		start, err := parseTime("start", *req.Start)
		if err != nil {
			h.handleError(w, err)
			return
		}
		patch.Start = &start
	}
	if req.End != nil {
		end, err := parseTime("end", *req.End)
		if err != nil {
			h.handleError(w, err)
			return
		}
		patch.End = &end
	}
	patch.TeamID = req.TeamID
	patch.Role = req.Role
	patch.IsTeamLeader = req.IsTeamLeader

	updated, err := h.scheduleService.UpdateAssignment(r.Context(), req.AssignmentID, patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UpdateAssignmentResponse{
		Assignment: domainAssignmentToHTTP(updated),
	})
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	var req DeleteAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	// удаление несуществующего назначения - не ошибка
	if err := h.scheduleService.DeleteAssignment(r.Context(), req.AssignmentID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
